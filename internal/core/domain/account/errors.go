package account

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrAccountDoesNotExist = errors.New("account does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotVerified  = errors.New("account email is not verified")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionTokenExpired = errors.New("session token expired")
)
