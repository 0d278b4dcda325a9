// services/authentication-service/internal/ports/repository/user_store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
)

// UserStore never leaks driver errors like sql.ErrNoRows; it returns
// domain errors (ErrUserNotFound, ErrEmailAlreadyExists).
type UserStore interface {
	CreateUser(ctx context.Context, user *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*user.User, error)
}
