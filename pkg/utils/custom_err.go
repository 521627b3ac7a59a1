package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrProviderFailure    = errors.New("identity provider failure")
	ErrStoreFailure       = errors.New("store failure")
	ErrDatabaseError      = errors.New("database error")
)
