package repository

import "errors"

var (
	ErrNotFound = errors.New("repository: object not found")

	ErrInvalidCountry = errors.New("invalid country")
	ErrInvalidCity    = errors.New("invalid city")
	ErrInvalidHotel   = errors.New("invalid hotel")
)
