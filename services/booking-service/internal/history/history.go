package history

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

// Status of a past shipment.
type Status string

const (
	Pending   Status = "pending"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// Label returns the French status badge text.
func (s Status) Label() string {
	switch s {
	case Delivered:
		return "Livré"
	case InTransit:
		return "En transit"
	case Pending:
		return "En attente"
	case Cancelled:
		return "Annulé"
	}
	return string(s)
}

// Entry is one row of the shipment history.
type Entry struct {
	ID        string
	Type      shipment.Type
	Title     string
	ShippedOn time.Time
	Status    Status
	Price     shipment.Amount
}

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// DisplayDate formats like "08 Juin 2025".
func (e Entry) DisplayDate() string {
	return fmt.Sprintf("%02d %s %d", e.ShippedOn.Day(), frenchMonths[e.ShippedOn.Month()-1], e.ShippedOn.Year())
}

// Stats are the counters above the list.
type Stats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	InTransit int `json:"in_transit"`
}

// Summary is the history screen content.
type Summary struct {
	Entries []Entry
	Stats   Stats
}

// Store lists past shipments, most recent first.
type Store interface {
	ListShipments(ctx context.Context) ([]Entry, error)
}

// Service loads the history. Concurrent loads share one store call.
type Service struct {
	store Store
	group singleflight.Group
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// LoadTimeout bounds one shared store call.
const LoadTimeout = 5 * time.Second

// Summary returns the entries and their counters. The shared load runs
// detached from any single caller; each caller only waits as long as its
// own ctx allows.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	ch := s.group.DoChan("history", func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()
		return s.store.ListShipments(loadCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Summary{}, fmt.Errorf("failed to load history: %w", res.Err)
	}
	entries := res.Val.([]Entry)

	stats := Stats{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case Delivered:
			stats.Delivered++
		case InTransit:
			stats.InTransit++
		}
	}
	// Callers share the slice returned by the flight.
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Summary{Entries: out, Stats: stats}, nil
}
