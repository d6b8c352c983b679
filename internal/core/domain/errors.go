package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every sentinel below wraps exactly one of them so the
// transport layer can map on the category alone.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrAuthorization  = errors.New("authorization failed")
	ErrNotFound       = errors.New("not found")
)

var (
	ErrInvalidInput = fmt.Errorf("%w: missing required field", ErrValidation)
	ErrInvalidRole  = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrUserExists   = fmt.Errorf("%w: user already exists", ErrValidation)
	ErrIDMismatch   = fmt.Errorf("%w: id in body does not match path", ErrValidation)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	ErrMissingToken       = fmt.Errorf("%w: missing bearer token", ErrAuthentication)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrAuthentication)
	ErrTokenExpired       = fmt.Errorf("%w: token expired", ErrAuthentication)

	ErrInvalidAdminKey = fmt.Errorf("%w: invalid admin key", ErrAuthorization)
	ErrForbidden       = fmt.Errorf("%w: access forbidden", ErrAuthorization)

	ErrUserNotFound = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrBookNotFound = fmt.Errorf("%w: book not found", ErrNotFound)
)
