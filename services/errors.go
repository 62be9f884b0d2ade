package services

import "errors"

// Failure classes surfaced to the request boundary. Controllers map
// these onto HTTP statuses; anything else is treated as an
// infrastructure failure.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrCartNotFound       = errors.New("cart not found")
)
