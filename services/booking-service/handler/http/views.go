package httptransport

import (
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/history"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
)

type createBookingRequest struct {
	ShipmentType string `json:"shipment_type"`
}

type scheduleRequest struct {
	PickupMode *string `json:"pickup_mode"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
}

type paymentRequest struct {
	Method     string `json:"method"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type carrierStatusRequest struct {
	Online *bool `json:"online"`
}

type scheduleView struct {
	shipment.Schedule
	State shipment.ScheduleState `json:"state"`
}

// paymentView never echoes card data.
type paymentView struct {
	Method       shipment.Method `json:"method,omitempty"`
	RequiresCard bool            `json:"requires_card"`
	CardEntered  bool            `json:"card_entered"`
}

type draftView struct {
	ID                 string                `json:"id"`
	Step               models.Step           `json:"step"`
	ShipmentType       shipment.Type         `json:"shipment_type"`
	ShipmentTitle      string                `json:"shipment_title"`
	Details            shipment.Details      `json:"details"`
	Measurements       shipment.Measurements `json:"measurements"`
	RecommendedVehicle shipment.Vehicle      `json:"recommended_vehicle"`
	Schedule           scheduleView          `json:"schedule"`
	Payment            paymentView           `json:"payment"`
	CanContinue        bool                  `json:"can_continue"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func newDraftView(d models.Draft) draftView {
	return draftView{
		ID:                 d.ID,
		Step:               d.Step,
		ShipmentType:       d.ShipmentType,
		ShipmentTitle:      d.ShipmentType.Title(),
		Details:            d.Details,
		Measurements:       d.Details.Measurements(),
		RecommendedVehicle: d.Details.RecommendedVehicle(),
		Schedule:           scheduleView{Schedule: d.Schedule, State: d.Schedule.State()},
		Payment: paymentView{
			Method:       d.Payment.Method,
			RequiresCard: d.Payment.Method.RequiresCard(),
			CardEntered:  d.Payment.CardEntered,
		},
		CanContinue: d.CanContinue(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type historyEntryView struct {
	ID          string          `json:"id"`
	Type        shipment.Type   `json:"type"`
	Title       string          `json:"title"`
	Date        string          `json:"date"`
	ShippedOn   string          `json:"shipped_on"`
	Status      history.Status  `json:"status"`
	StatusLabel string          `json:"status_label"`
	Price       shipment.Amount `json:"price"`
}

type historyView struct {
	Stats     history.Stats      `json:"stats"`
	Shipments []historyEntryView `json:"shipments"`
}

func newHistoryView(s history.Summary) historyView {
	v := historyView{Stats: s.Stats, Shipments: make([]historyEntryView, 0, len(s.Entries))}
	for _, e := range s.Entries {
		v.Shipments = append(v.Shipments, historyEntryView{
			ID:          e.ID,
			Type:        e.Type,
			Title:       e.Title,
			Date:        e.DisplayDate(),
			ShippedOn:   e.ShippedOn.Format(shipment.DateLayout),
			Status:      e.Status,
			StatusLabel: e.Status.Label(),
			Price:       e.Price,
		})
	}
	return v
}
