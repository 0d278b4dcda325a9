// services/authentication-service/internal/infra/memory/user.memory.go
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domainErr "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

var _ repository.UserStore = (*UserStore)(nil)

// UserStore keeps accounts for the life of the process.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]user.User
	byEmail map[string]uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) CreateUser(ctx context.Context, u *user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	email := strings.ToLower(u.UserEmail)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return domainErr.ErrEmailAlreadyExists
	}
	cp := *u
	cp.UserEmail = email
	s.byID[cp.UserID] = cp
	s.byEmail[email] = cp.UserID
	return nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domainErr.ErrUserNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[userID]
	if !ok {
		return nil, domainErr.ErrUserNotFound
	}
	return &u, nil
}
