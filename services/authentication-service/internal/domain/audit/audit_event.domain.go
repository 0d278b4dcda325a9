// services/authentication-service/internal/domain/audit/audit_event.domain.go
package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionUserRegistered = "USER_REGISTERED"
	ActionUserLoggedIn   = "USER_LOGGED_IN"
)

// AuditEvent is an immutable security record: who did what, and when.
// Commands append one per successful state change; reads and failed
// attempts are never audited.
type AuditEvent struct {
	ID          uuid.UUID
	ActorUserID *uuid.UUID
	Action      string
	Metadata    map[string]any
	CreatedAt   time.Time
}
