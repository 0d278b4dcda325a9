// services/authentication-service/internal/domain/session/session.domain.go
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is a login. The client holds an opaque token; we keep only
// its SHA-256 hash so a leaked store cannot be replayed.
type Session struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
