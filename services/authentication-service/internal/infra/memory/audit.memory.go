// services/authentication-service/internal/infra/memory/audit.memory.go
package memory

import (
	"context"
	"log"
	"sync"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/audit"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
)

var _ repository.AuditStore = (*AuditLog)(nil)

// AuditLog appends events in memory and writes each one to the process log.
type AuditLog struct {
	mu     sync.Mutex
	events []audit.AuditEvent
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (a *AuditLog) Append(ctx context.Context, event *audit.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	a.events = append(a.events, *event)
	a.mu.Unlock()
	log.Printf("audit: %s actor=%v", event.Action, event.ActorUserID)
	return nil
}

// Events returns a copy of everything appended so far.
func (a *AuditLog) Events() []audit.AuditEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]audit.AuditEvent, len(a.events))
	copy(out, a.events)
	return out
}
