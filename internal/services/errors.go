package services

import "errors"

// Domain errors surfaced to the API layer.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("missing required fields")
)
