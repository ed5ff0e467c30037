package domain

import "errors"

// Registration and validation errors
var (
	ErrNameRequired     = errors.New("please enter your name")
	ErrInvalidEmail     = errors.New("please enter a valid email")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailExists      = errors.New("email already exists")
)

// Activation errors
var (
	ErrActivationTokenInvalid = errors.New("invalid or expired activation token")
	ErrActivationCodeMismatch = errors.New("invalid activation code")
)

// Authentication errors. Credential failures stay deliberately coarse so
// responses never distinguish an unknown email from a wrong password.
var (
	ErrMissingCredentials = errors.New("please enter email and password")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrRefreshInvalid = errors.New("could not refresh token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Profile mutation errors
var (
	ErrMissingFields    = errors.New("please enter old and new passwords")
	ErrInvalidUser      = errors.New("invalid user")
	ErrWrongOldPassword = errors.New("invalid old password")
)

// Store and delivery errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrMailDelivery = errors.New("could not send activation email")
	ErrMediaStore   = errors.New("media store operation failed")
)
