// store/store.go
package store

import (
	"context"
	"errors"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore holds in-progress booking drafts. Drafts are transient:
// implementations expire them after a TTL.
type DraftStore interface {
	// SaveDraft creates or replaces the draft and restarts its TTL.
	SaveDraft(ctx context.Context, draft models.Draft) error

	// GetDraft returns ErrDraftNotFound for unknown or expired ids.
	GetDraft(ctx context.Context, id string) (models.Draft, error)

	// DeleteDraft is a no-op for unknown ids.
	DeleteDraft(ctx context.Context, id string) error
}
