package carrier

import (
	"context"
	"log"
	"sync"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

// Marker is a shipment waiting for pickup near the carrier.
type Marker struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	DistanceKm float64         `json:"distance_km"`
	Distance   string          `json:"distance"`
	Price      shipment.Amount `json:"price"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	IsPro      bool            `json:"is_pro"`
}

// NearbyMarkers are the shipments shown on the carrier map around Alger.
var NearbyMarkers = []Marker{
	{ID: "1", Title: "Colis - 5kg", DistanceKm: 2.3, Distance: "2.3 km", Price: 1_200, Latitude: 36.737232, Longitude: 3.086472, IsPro: true},
	{ID: "2", Title: "Palette - 2 unités", DistanceKm: 4.8, Distance: "4.8 km", Price: 4_500, Latitude: 36.747232, Longitude: 3.096472},
	{ID: "3", Title: "Colis urgent - 1kg", DistanceKm: 1.5, Distance: "1.5 km", Price: 900, Latitude: 36.727232, Longitude: 3.076472},
}

// Status is the carrier availability toggle.
type Status struct {
	Online bool   `json:"online"`
	Label  string `json:"label"`
}

func statusOf(online bool) Status {
	if online {
		return Status{Online: true, Label: "En ligne"}
	}
	return Status{Online: false, Label: "Hors ligne"}
}

// Service holds the availability flag and serves the map markers.
type Service struct {
	mu     sync.RWMutex
	online bool
}

func NewService() *Service {
	return &Service{}
}

// Nearby returns the map markers. Offline carriers still see them.
func (s *Service) Nearby(ctx context.Context) []Marker {
	out := make([]Marker, len(NearbyMarkers))
	copy(out, NearbyMarkers)
	return out
}

// Status returns the current availability.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return statusOf(s.online)
}

// SetOnline flips availability and returns the new status.
func (s *Service) SetOnline(online bool) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.online != online {
		log.Printf("carrier: now %s", statusOf(online).Label)
	}
	s.online = online
	return statusOf(online)
}
