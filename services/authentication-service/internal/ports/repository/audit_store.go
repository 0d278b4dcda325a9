// services/authentication-service/internal/ports/repository/audit_store.go

package repository

import (
	"context"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/audit"
)

type AuditStore interface {
	// Append is write only.
	Append(ctx context.Context, event *audit.AuditEvent) error
}
