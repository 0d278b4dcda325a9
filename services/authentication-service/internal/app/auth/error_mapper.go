package auth

import (
	"context"
	stdErrors "errors"
	"net/http"

	domainErr "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
)

// Mapped is a transport-safe rendition of a command error.
type Mapped struct {
	Status  int
	Kind    string
	Message string
}

// MapError flattens the domain errors for HTTP.
// Unknown email and wrong password must read the same, otherwise the
// response tells an attacker which addresses have accounts.
func MapError(err error) Mapped {
	switch {
	case stdErrors.Is(err, domainErr.ErrInvalidCredentials), stdErrors.Is(err, domainErr.ErrUserNotFound):
		return Mapped{http.StatusUnauthorized, "unauthenticated", "invalid email or password"}
	case stdErrors.Is(err, domainErr.ErrSessionNotFound), stdErrors.Is(err, domainErr.ErrSessionExpired):
		return Mapped{http.StatusUnauthorized, "unauthenticated", "invalid or expired session"}
	case stdErrors.Is(err, domainErr.ErrUserSuspended):
		// deliberate leak, support needs to tell the user why
		return Mapped{http.StatusForbidden, "forbidden", "account suspended"}
	case stdErrors.Is(err, domainErr.ErrEmailAlreadyExists):
		return Mapped{http.StatusConflict, "conflict", err.Error()}
	case stdErrors.Is(err, domainErr.ErrInvalidInput), stdErrors.Is(err, domainErr.ErrInvalidAccountType):
		return Mapped{http.StatusBadRequest, "bad_request", err.Error()}
	case stdErrors.Is(err, context.DeadlineExceeded):
		return Mapped{http.StatusGatewayTimeout, "timeout", "request timed out"}
	}
	return Mapped{http.StatusInternalServerError, "internal", "internal error"}
}
