package model

import "fmt"

// Name представляет имя владельца учетной записи.
type Name struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

func (n Name) String() string {
	return fmt.Sprintf("%s %s", n.Given, n.Family)
}

// Account представляет зарегистрированную учетную запись.
// ID остается nil до регистрации и назначается ровно один раз.
type Account struct {
	Name     Name    `json:"name"`
	Username string  `json:"username"`
	Password *string `json:"password" binding:"required"`
	ID       *int    `json:"id"`
	Child    *bool   `json:"child"`
}

func (a Account) String() string {
	if a.ID == nil {
		return fmt.Sprintf("%s (unregistered)", a.Name)
	}
	return fmt.Sprintf("%s (%d)", a.Name, *a.ID)
}

// Redacted возвращает копию учетной записи без пароля.
func (a Account) Redacted() Account {
	a.Password = nil
	return a
}

// PasswordMatches сравнивает сохраненный пароль с переданным.
func (a Account) PasswordMatches(password string) bool {
	return a.Password != nil && *a.Password == password
}
