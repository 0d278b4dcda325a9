// services/authentication-service/internal/app/queries/current_user.queries.go
package queries

import (
	"context"
	"time"

	domainError "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

// CurrentUserHandler resolves a bearer token to its account.
type CurrentUserHandler struct {
	userRepo    repository.UserStore
	sessionRepo repository.SessionStore
	now         func() time.Time
}

func NewCurrentUserHandler(userRepo repository.UserStore, sessionRepo repository.SessionStore) *CurrentUserHandler {
	return &CurrentUserHandler{userRepo: userRepo, sessionRepo: sessionRepo, now: time.Now}
}

func (h *CurrentUserHandler) Handle(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, domainError.ErrSessionNotFound
	}
	sess, err := h.sessionRepo.GetSessionByTokenHash(ctx, crypto.HashToken(token))
	if err != nil {
		return nil, err
	}
	if sess.Expired(h.now()) {
		return nil, domainError.ErrSessionExpired
	}
	return h.userRepo.GetUserByID(ctx, sess.UserID)
}
