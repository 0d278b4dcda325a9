//services/authentication-service/internal/ports/crypto/hasher.crypto.go

package crypto

import "context"

// PasswordHasher hides the algorithm from the commands.
type PasswordHasher interface {
	HashPassword(ctx context.Context, password string) (string, error)
	VerifyPassword(ctx context.Context, password, encodedHash string) (bool, error)
}
