package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/session"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
)

func TestUserStore_EmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()
	u := &user.User{UserID: uuid.New(), UserEmail: "Amina@Example.dz", AccountType: user.AccountPersonal}

	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.GetUserByEmail(ctx, "amina@example.DZ")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)
	assert.Equal(t, "amina@example.dz", got.UserEmail)

	err = s.CreateUser(ctx, &user.User{UserID: uuid.New(), UserEmail: "AMINA@example.dz"})
	assert.ErrorIs(t, err, domainErr.ErrEmailAlreadyExists)

	byID, err := s.GetUserByID(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, byID.UserID)
}

func TestUserStore_NotFound(t *testing.T) {
	t.Parallel()
	s := NewUserStore()

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.dz")
	assert.ErrorIs(t, err, domainErr.ErrUserNotFound)
	_, err = s.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainErr.ErrUserNotFound)
}

func TestSessionStore(t *testing.T) {
	t.Parallel()
	s := NewSessionStore()
	ctx := context.Background()
	sess := &session.Session{SessionID: uuid.New(), UserID: uuid.New(), TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, s.CreateSession(ctx, sess))

	got, err := s.GetSessionByTokenHash(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)

	_, err = s.GetSessionByTokenHash(ctx, "zzz")
	assert.ErrorIs(t, err, domainErr.ErrSessionNotFound)
}

func TestStores_RespectCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewUserStore().CreateUser(ctx, &user.User{}), context.Canceled)
	assert.ErrorIs(t, NewSessionStore().CreateSession(ctx, &session.Session{}), context.Canceled)
	assert.ErrorIs(t, NewAuditLog().Append(ctx, nil), context.Canceled)
}
