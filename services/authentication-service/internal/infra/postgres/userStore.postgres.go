package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	domainErr "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/errors"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

// Ensure PostgresUserStore implements the interface at compile time
var _ repository.UserStore = (*PostgresUserStore)(nil)

const uniqueViolation = "23505"

type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    account_type  TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    status        TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
)`

func (s *PostgresUserStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, usersSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (user_id, email, first_name, last_name, account_type, password_hash, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.UserID, strings.ToLower(u.UserEmail), u.FirstName, u.LastName,
		string(u.AccountType), u.PasswordHash, string(u.Status), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domainErr.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

const selectUser = `
        SELECT user_id, email, first_name, last_name, account_type, password_hash, status, created_at, updated_at
        FROM users `

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, selectUser+`WHERE email = $1`, strings.ToLower(email)))
}

func (s *PostgresUserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, selectUser+`WHERE user_id = $1`, userID))
}

func (s *PostgresUserStore) scanOne(row *sql.Row) (*user.User, error) {
	var (
		u                   user.User
		accountType, status string
	)
	err := row.Scan(&u.UserID, &u.UserEmail, &u.FirstName, &u.LastName, &accountType, &u.PasswordHash, &status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainErr.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	u.AccountType = user.AccountType(accountType)
	u.Status = user.UserStatus(status)
	return &u, nil
}
