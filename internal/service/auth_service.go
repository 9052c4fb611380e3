package service

import (
	"errors"
	"fmt"

	"travelbooking/internal/model"
	"travelbooking/internal/repository"
)

// AuthService проверяет учетные данные basic-авторизации.
type AuthService struct {
	accountRepo *repository.AccountRepository
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(accountRepo *repository.AccountRepository) *AuthService {
	return &AuthService{accountRepo: accountRepo}
}

// CheckCredentials ищет учетную запись по имени пользователя и сверяет пароль.
// Возвращает найденную запись без пароля.
func (s *AuthService) CheckCredentials(username, password string) (model.Account, error) {
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Account{}, ErrUsernameNotFound.Wrap(err)
		}
		return model.Account{}, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	if !account.PasswordMatches(password) {
		return model.Account{}, ErrBadPassword
	}
	return account.Redacted(), nil
}
