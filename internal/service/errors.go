package service

import "errors"

var (
	ErrUnauthorized       = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidPage = errors.New("invalid page")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
