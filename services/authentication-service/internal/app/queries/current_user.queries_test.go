package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainError "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/session"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/infra/memory"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
)

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	now := time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)

	u := &user.User{UserID: uuid.New(), UserEmail: "karim@example.dz", AccountType: user.AccountBusiness}
	require.NoError(t, users.CreateUser(ctx, u))

	raw, hash, err := crypto.NewOpaqueToken()
	require.NoError(t, err)
	require.NoError(t, sessions.CreateSession(ctx, &session.Session{
		SessionID: uuid.New(), UserID: u.UserID, TokenHash: hash, IssuedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	h := NewCurrentUserHandler(users, sessions)
	h.now = func() time.Time { return now.Add(30 * time.Minute) }

	got, err := h.Handle(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	_, err = h.Handle(ctx, "")
	assert.ErrorIs(t, err, domainError.ErrSessionNotFound)
	_, err = h.Handle(ctx, "forged")
	assert.ErrorIs(t, err, domainError.ErrSessionNotFound)

	h.now = func() time.Time { return now.Add(time.Hour) }
	_, err = h.Handle(ctx, raw)
	assert.ErrorIs(t, err, domainError.ErrSessionExpired)
}
