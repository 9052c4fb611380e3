package repository

import (
	"fmt"
	"sync"

	"travelbooking/internal/model"
)

// AccountRepository хранит учетные записи в памяти. Позиция в списке является ID записи.
type AccountRepository struct {
	mu       sync.Mutex
	accounts []model.Account
}

// NewAccountRepository создаёт пустой репозиторий учетных записей.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// Register назначает записи ID, равный текущему размеру хранилища, и добавляет ее в конец.
// Уникальность имени пользователя не проверяется.
func (r *AccountRepository) Register(account model.Account) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.accounts)
	account.ID = &id
	r.accounts = append(r.accounts, account)
	return id
}

// FindByUsername возвращает первую зарегистрированную запись с данным именем пользователя.
func (r *AccountRepository) FindByUsername(username string) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %q: %w", username, ErrNotFound)
}

// FindByID возвращает запись по ее ID.
func (r *AccountRepository) FindByID(id int) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.accounts) {
		return model.Account{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return r.accounts[id], nil
}

// Count возвращает количество зарегистрированных записей.
func (r *AccountRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}
