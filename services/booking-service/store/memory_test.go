package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	d := models.Draft{ID: "d1", Step: models.StepDetails}
	if err := s.SaveDraft(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetDraft(ctx, "d1")
	if err != nil || got.ID != "d1" {
		t.Fatalf("get: %+v %v", got, err)
	}
	if err := s.DeleteDraft(ctx, "d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetDraft(ctx, "d1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound after delete, got %v", err)
	}
	if err := s.DeleteDraft(ctx, "missing"); err != nil {
		t.Fatalf("deleting unknown id should be a no-op, got %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(30 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.SaveDraft(ctx, models.Draft{ID: "old"})
	now = now.Add(20 * time.Minute)
	_ = s.SaveDraft(ctx, models.Draft{ID: "new"})
	now = now.Add(15 * time.Minute)

	if _, err := s.GetDraft(ctx, "old"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected old draft to be expired, got %v", err)
	}
	if _, err := s.GetDraft(ctx, "new"); err != nil {
		t.Fatalf("expected new draft to be alive, got %v", err)
	}
	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept draft, got %d", n)
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.SaveDraft(ctx, models.Draft{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
