package services

import "errors"

// Service errors form the closed set of conditions the HTTP layer maps to
// status codes and user-safe messages. Anything else is an internal error.
var (
	ErrDuplicateEmail     = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordMismatch   = errors.New("current password does not match")
	ErrRateLimited        = errors.New("too many attempts, please try again later")
)
