// services/authentication-service/internal/app/commands/login_user.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/audit"
	domainError "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/session"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

// LoginLatency is the fixed delay every login attempt waits before answering.
const LoginLatency = time.Second

const DefaultSessionTTL = 24 * time.Hour

type LoginUserHandler struct {
	userRepo     repository.UserStore
	sessionRepo  repository.SessionStore
	auditRepo    repository.AuditStore
	passwordHash crypto.PasswordHasher
	sessionTTL   time.Duration
	latency      time.Duration
	sleep        func(time.Duration)
	now          func() time.Time
}

func NewLoginUserHandler(
	userRepo repository.UserStore,
	sessionRepo repository.SessionStore,
	auditRepo repository.AuditStore,
	passwordHash crypto.PasswordHasher,
	sessionTTL time.Duration,
) *LoginUserHandler {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &LoginUserHandler{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		auditRepo:    auditRepo,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
		latency:      LoginLatency,
		sleep:        time.Sleep,
		now:          time.Now,
	}
}

// WithSleep replaces the latency wait; tests pass a recorder.
func (h *LoginUserHandler) WithSleep(sleep func(time.Duration)) *LoginUserHandler {
	h.sleep = sleep
	return h
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
	User      *user.User
}

// Handle waits the fixed latency, then checks the credentials and opens a session.
// Blank fields are rejected immediately, the way the login button stays disabled.
func (h *LoginUserHandler) Handle(ctx context.Context, params LoginParams) (*LoginResult, error) {
	// 1. Blank fields never reach the latency
	email := strings.TrimSpace(params.Email)
	if email == "" || params.Password == "" {
		return nil, domainError.ErrInvalidInput
	}

	// 2. Simulated latency, paid by success and failure alike
	h.sleep(h.latency)

	// 3. Verify credentials. Unknown email and wrong password look the same.
	u, err := h.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainError.ErrUserNotFound) {
			return nil, domainError.ErrInvalidCredentials
		}
		return nil, err
	}
	match, err := h.passwordHash.VerifyPassword(ctx, params.Password, u.PasswordHash)
	if err != nil || !match {
		return nil, domainError.ErrInvalidCredentials
	}
	if u.Status == user.UserStatusSuspended {
		return nil, domainError.ErrUserSuspended
	}

	// 4. Issue the session; only the token hash is stored
	raw, hash, err := crypto.NewOpaqueToken()
	if err != nil {
		return nil, err
	}
	now := h.now().UTC()
	sess := &session.Session{
		SessionID: uuid.New(),
		UserID:    u.UserID,
		TokenHash: hash,
		IssuedAt:  now,
		ExpiresAt: now.Add(h.sessionTTL),
	}
	if err := h.sessionRepo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	// 5. Audit Log
	actor := u.UserID
	if err := h.auditRepo.Append(ctx, &audit.AuditEvent{
		ID:          uuid.New(),
		ActorUserID: &actor,
		Action:      audit.ActionUserLoggedIn,
		Metadata:    map[string]any{"session_id": sess.SessionID.String()},
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("failed to append audit event: %w", err)
	}

	return &LoginResult{
		Token:     raw,
		TokenType: "Bearer",
		ExpiresAt: sess.ExpiresAt,
		User:      u,
	}, nil
}
