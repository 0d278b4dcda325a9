package history

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SummaryOfSeed(t *testing.T) {
	svc := NewService(NewMemoryStore(Seed))
	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 5, Delivered: 3, InTransit: 1}, sum.Stats)
	assert.Equal(t, "3257-9821", sum.Entries[0].ID)
	assert.Equal(t, "25 Mai 2025", sum.Entries[4].DisplayDate())
	assert.Equal(t, "120,000 DA", sum.Entries[4].Price.String())
}

func TestStatus_Label(t *testing.T) {
	cases := map[Status]string{
		Delivered: "Livré",
		InTransit: "En transit",
		Pending:   "En attente",
		Cancelled: "Annulé",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.Label())
	}
}

// slowStore blocks until released and counts calls.
type slowStore struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *slowStore) ListShipments(ctx context.Context) ([]Entry, error) {
	s.calls.Add(1)
	<-s.release
	return Seed, nil
}

func TestService_ConcurrentLoadsShareOneCall(t *testing.T) {
	st := &slowStore{release: make(chan struct{})}
	svc := NewService(st)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Summary(context.Background())
			assert.NoError(t, err)
		}()
	}
	// let the callers pile up on the flight
	time.Sleep(50 * time.Millisecond)
	close(st.release)
	wg.Wait()

	assert.Equal(t, int32(1), st.calls.Load())
}

type failingStore struct{}

func (failingStore) ListShipments(context.Context) ([]Entry, error) {
	return nil, errors.New("db down")
}

func TestService_StoreError(t *testing.T) {
	_, err := NewService(failingStore{}).Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

// ctxStore blocks until released or its ctx ends.
type ctxStore struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (s *ctxStore) ListShipments(ctx context.Context) ([]Entry, error) {
	s.once.Do(func() { close(s.started) })
	select {
	case <-s.release:
		return Seed, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestService_CancelledCallerDoesNotFailOthers(t *testing.T) {
	st := &ctxStore{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(st)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Summary(first)
		firstErr <- err
	}()
	<-st.started

	type result struct {
		sum Summary
		err error
	}
	second := make(chan result, 1)
	go func() {
		sum, err := svc.Summary(context.Background())
		second <- result{sum, err}
	}()
	// let the second caller join the flight
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(st.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 5, got.sum.Stats.Total)
}
