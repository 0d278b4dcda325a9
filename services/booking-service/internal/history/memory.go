package history

import (
	"context"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed is the built-in history.
var Seed = []Entry{
	{ID: "3257-9821", Type: shipment.Package, Title: "Colis - Alger à Oran", ShippedOn: day(2025, time.June, 22), Status: Delivered, Price: 12_500},
	{ID: "2984-1532", Type: shipment.Pallet, Title: "Palette - Annaba à Constantine", ShippedOn: day(2025, time.June, 15), Status: Delivered, Price: 45_000},
	{ID: "8473-6542", Type: shipment.Package, Title: "Colis - Alger à Béjaïa", ShippedOn: day(2025, time.June, 8), Status: InTransit, Price: 8_700},
	{ID: "9362-7452", Type: shipment.Fresh, Title: "Produits Frais - Alger à Blida", ShippedOn: day(2025, time.June, 1), Status: Delivered, Price: 15_300},
	{ID: "4751-3698", Type: shipment.Container, Title: "Conteneur - Oran à Alger", ShippedOn: day(2025, time.May, 25), Status: Cancelled, Price: 120_000},
}

// MemoryStore serves a fixed list.
type MemoryStore struct {
	entries []Entry
}

func NewMemoryStore(entries []Entry) *MemoryStore {
	return &MemoryStore{entries: entries}
}

func (s *MemoryStore) ListShipments(ctx context.Context) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
