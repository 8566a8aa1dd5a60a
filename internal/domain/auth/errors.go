package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountLocked      = errors.New("account temporarily locked after too many failed logins")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrInvalidRole        = errors.New("role must be manager or tenant")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCodeMismatch       = errors.New("verification code is invalid or expired")
)
