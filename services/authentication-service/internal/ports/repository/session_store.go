// services/authentication-service/internal/ports/repository/session_store.go
package repository

import (
	"context"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/session"
)

type SessionStore interface {
	CreateSession(ctx context.Context, s *session.Session) error
	// GetSessionByTokenHash returns ErrSessionNotFound for unknown hashes.
	GetSessionByTokenHash(ctx context.Context, hash string) (*session.Session, error)
}
