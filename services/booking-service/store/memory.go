package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
)

type memoryEntry struct {
	draft     models.Draft
	expiresAt time.Time
}

type MemoryStore struct {
	drafts map[string]memoryEntry
	ttl    time.Duration
	now    func() time.Time
	mu     sync.RWMutex
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		drafts: make(map[string]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryStore) SaveDraft(ctx context.Context, draft models.Draft) error {
	// Check if the context is canceled or timed out
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = memoryEntry{draft: draft, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) GetDraft(ctx context.Context, id string) (models.Draft, error) {
	select {
	case <-ctx.Done():
		return models.Draft{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.drafts[id]
	if !ok || !s.now().Before(e.expiresAt) {
		return models.Draft{}, ErrDraftNotFound
	}
	return e.draft, nil
}

func (s *MemoryStore) DeleteDraft(ctx context.Context, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// Sweep removes expired drafts and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.drafts {
		if !now.Before(e.expiresAt) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("store: expired %d drafts", n)
			}
		}
	}
}
