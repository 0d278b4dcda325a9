// services/authentication-service/internal/domain/errors/errors.domain.go
package errors

import "errors"

// Standard Sentinel Errors
// The transport layer maps these to status codes
// (e.g. ErrInvalidCredentials -> 401).

var (
	// Authentication Errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserSuspended      = errors.New("user account is suspended")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Session Errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Validation Errors
	ErrInvalidInput       = errors.New("invalid input arguments")
	ErrInvalidAccountType = errors.New("account type must be personal or business")
)
