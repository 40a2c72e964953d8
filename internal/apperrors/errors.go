package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the caller is not authenticated (or no longer may be).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks permission.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned for an unknown username or a wrong password.
// Both cases share one error so login responses do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrTokenExpired and ErrTokenInvalid are the Identity Verifier failure tags.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token malformed")
	ErrTokenUnknown = errors.New("token subject unknown")
)
