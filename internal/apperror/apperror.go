// Package apperror описывает ошибки, которые передаются клиенту вместе с HTTP-статусом.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error - ошибка с HTTP-статусом и сообщением для клиента.
type Error struct {
	Status  int
	Message string
	err     error
}

// New создает ошибку с указанным статусом и сообщением.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is сравнивает ошибки по статусу и сообщению, чтобы errors.Is работал с обернутыми копиями.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// Wrap возвращает копию ошибки с присоединенной причиной.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Status: e.Status, Message: e.Message, err: cause}
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Unprocessable(message string) *Error {
	return New(http.StatusUnprocessableEntity, message)
}

// From извлекает *Error из цепочки ошибок. Для прочих ошибок ok == false.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
