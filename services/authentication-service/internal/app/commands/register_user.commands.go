// services/authentication-service/internal/app/commands/register_user.commands.go
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/audit"
	domainError "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

type RegisterUserHandler struct {
	userRepo     repository.UserStore
	auditRepo    repository.AuditStore
	passwordHash crypto.PasswordHasher
	now          func() time.Time
}

func NewRegisterUserHandler(
	userRepo repository.UserStore,
	auditRepo repository.AuditStore,
	passwordHash crypto.PasswordHasher,
) *RegisterUserHandler {
	return &RegisterUserHandler{
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		passwordHash: passwordHash,
		now:          time.Now,
	}
}

type RegisterParams struct {
	AccountType string
	Email       string
	Password    string
	FirstName   string
	LastName    string
}

func (h *RegisterUserHandler) Handle(ctx context.Context, params RegisterParams) (*user.User, error) {
	// 1. Validate input
	accountType, ok := user.ParseAccountType(params.AccountType)
	if !ok {
		return nil, domainError.ErrInvalidAccountType
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || params.Password == "" {
		return nil, domainError.ErrInvalidInput
	}

	// 2. Hash the password before touching the store so a slow hash never holds a lock
	hash, err := h.passwordHash.HashPassword(ctx, params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 3. Persist the account
	now := h.now().UTC()
	u := &user.User{
		UserID:       uuid.New(),
		UserEmail:    email,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		AccountType:  accountType,
		PasswordHash: hash,
		Status:       user.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// ErrEmailAlreadyExists passes through untouched
	if err := h.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	// 4. Audit Log
	actor := u.UserID
	if err := h.auditRepo.Append(ctx, &audit.AuditEvent{
		ID:          uuid.New(),
		ActorUserID: &actor,
		Action:      audit.ActionUserRegistered,
		Metadata:    map[string]any{"account_type": string(accountType)},
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("failed to append audit event: %w", err)
	}
	return u, nil
}
