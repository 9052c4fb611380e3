package service

import (
	"errors"
	"fmt"
	"log/slog"

	"travelbooking/internal/apperror"
	"travelbooking/internal/model"
	"travelbooking/internal/repository"
)

// UserService содержит бизнес-логику, связанную с учетными записями.
type UserService struct {
	accountRepo *repository.AccountRepository
	logger      *slog.Logger
}

// NewUserService создает новый сервис пользователей.
func NewUserService(accountRepo *repository.AccountRepository, logger *slog.Logger) *UserService {
	return &UserService{accountRepo: accountRepo, logger: logger}
}

// Register регистрирует учетную запись и возвращает назначенный ID.
// Переданный клиентом ID игнорируется.
func (s *UserService) Register(account model.Account) int {
	account.ID = nil
	id := s.accountRepo.Register(account)
	account.ID = &id
	s.logger.Info("registered a new account", "account", account.String(), "username", account.Username,
		"total_accounts", s.accountRepo.Count())
	return id
}

// GetByID возвращает учетную запись по ID без пароля.
func (s *UserService) GetByID(id int) (model.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Account{}, apperror.NotFound(fmt.Sprintf("User having ID = %d cannot be found", id)).Wrap(err)
		}
		return model.Account{}, err
	}
	return account.Redacted(), nil
}
