package service

import "travelbooking/internal/apperror"

var (
	ErrUsernameNotFound = apperror.Unauthorized("Username cannot be found")
	ErrBadPassword      = apperror.Unauthorized("Bad password")

	ErrInvalidCountry = apperror.BadRequest("Invalid country")
	ErrInvalidCity    = apperror.BadRequest("Invalid city")
	ErrInvalidHotel   = apperror.BadRequest("Invalid hotel")
)
