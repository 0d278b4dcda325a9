// services/authentication-service/internal/infra/memory/session.memory.go
package memory

import (
	"context"
	"sync"

	domainErr "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/session"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

type SessionStore struct {
	mu     sync.RWMutex
	byHash map[string]session.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{byHash: make(map[string]session.Session)}
}

func (s *SessionStore) CreateSession(ctx context.Context, sess *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.byHash[sess.TokenHash] = *sess
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) GetSessionByTokenHash(ctx context.Context, hash string) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byHash[hash]
	if !ok {
		return nil, domainErr.ErrSessionNotFound
	}
	return &sess, nil
}
