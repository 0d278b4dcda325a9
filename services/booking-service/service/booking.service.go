// service/booking.service.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/store"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
)

// BookingService drives a draft through the wizard steps:
// details -> schedule -> payment -> confirmed.
// Each step can only be edited while the draft is on it.
type BookingService struct {
	store     store.DraftStore
	confirmer Confirmer
	now       func() time.Time
	// mu serialises read-modify-write cycles on drafts.
	mu sync.Mutex
}

// NewBookingService wires the draft store and the confirmation sink.
func NewBookingService(store store.DraftStore, confirmer Confirmer) *BookingService {
	if confirmer == nil {
		confirmer = LogConfirmer{}
	}
	return &BookingService{
		store:     store,
		confirmer: confirmer,
		now:       time.Now,
	}
}

// WithClock replaces the clock. Used by tests and by callers pinning a timezone.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// ShipmentTypes returns the type selector catalog.
func (s *BookingService) ShipmentTypes() []shipment.Option {
	return shipment.Catalog()
}

// Start creates a draft with the shipment type chosen; the draft opens on
// the details step.
func (s *BookingService) Start(ctx context.Context, shipmentType string) (models.Draft, error) {
	typ, err := shipment.ParseType(shipmentType)
	if err != nil {
		return models.Draft{}, err
	}
	now := s.now()
	draft := models.Draft{
		ID:           uuid.NewString(),
		Step:         models.StepDetails,
		ShipmentType: typ,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.SaveDraft(ctx, draft); err != nil {
		return models.Draft{}, err
	}
	log.Printf("booking: draft %s started (%s)", draft.ID, typ)
	return draft, nil
}

// Get returns the draft as stored.
func (s *BookingService) Get(ctx context.Context, id string) (models.Draft, error) {
	return s.store.GetDraft(ctx, id)
}

// UpdateDetails replaces the details step fields.
func (s *BookingService) UpdateDetails(ctx context.Context, id string, details shipment.Details) (models.Draft, error) {
	return s.mutate(ctx, id, models.StepDetails, func(d *models.Draft) error {
		d.Details = details
		return nil
	})
}

// ContinueDetails moves to the schedule step once volume and weight are filled.
func (s *BookingService) ContinueDetails(ctx context.Context, id string) (models.Draft, error) {
	return s.mutate(ctx, id, models.StepDetails, func(d *models.Draft) error {
		if !d.Details.CanContinue() {
			return fmt.Errorf("%w: volume and weight are required", ErrStepIncomplete)
		}
		d.Step = models.StepSchedule
		return nil
	})
}

// ScheduleOptions lists what the schedule step offers right now.
type ScheduleOptions struct {
	Dates            shipment.DateWindow `json:"dates"`
	AppointmentSlots []string            `json:"appointment_slots"`
	AfterSlots       []string            `json:"after_slots"`
}

// ScheduleOptions returns the 7 offered days and both slot lists.
func (s *BookingService) ScheduleOptions(ctx context.Context, id string) (ScheduleOptions, error) {
	if _, err := s.store.GetDraft(ctx, id); err != nil {
		return ScheduleOptions{}, err
	}
	return ScheduleOptions{
		Dates:            shipment.NewDateWindow(s.now()),
		AppointmentSlots: shipment.Appointment.Slots(),
		AfterSlots:       shipment.After.Slots(),
	}, nil
}

// ScheduleInput carries the selections to apply. Nil fields are left alone;
// an empty Time clears the slot.
type ScheduleInput struct {
	Mode *string
	Date *string
	Time *string
}

// UpdateSchedule applies mode, then date, then time. Nothing is saved if
// any selection is rejected.
func (s *BookingService) UpdateSchedule(ctx context.Context, id string, in ScheduleInput) (models.Draft, error) {
	return s.mutate(ctx, id, models.StepSchedule, func(d *models.Draft) error {
		sched := d.Schedule
		if in.Mode != nil {
			if err := sched.SelectMode(shipment.PickupMode(*in.Mode)); err != nil {
				return err
			}
		}
		if in.Date != nil {
			if err := sched.SelectDate(*in.Date, shipment.NewDateWindow(s.now())); err != nil {
				return err
			}
		}
		if in.Time != nil {
			if *in.Time == "" {
				sched.Time = ""
			} else if err := sched.SelectTime(*in.Time); err != nil {
				return err
			}
		}
		d.Schedule = sched
		return nil
	})
}

// ContinueSchedule moves to the payment step. The date is checked against
// today's window again since a draft may outlive the day it was filled in.
func (s *BookingService) ContinueSchedule(ctx context.Context, id string) (models.Draft, error) {
	return s.mutate(ctx, id, models.StepSchedule, func(d *models.Draft) error {
		if !d.Schedule.CanContinue() {
			return fmt.Errorf("%w: schedule is %s", ErrStepIncomplete, d.Schedule.State())
		}
		// a date that rolled out of the window leaves the step incomplete
		if !shipment.NewDateWindow(s.now()).Contains(d.Schedule.Date) {
			return fmt.Errorf("%w: %w: %q", ErrStepIncomplete, shipment.ErrDateOutOfRange, d.Schedule.Date)
		}
		d.Step = models.StepPayment
		return nil
	})
}

// Quote returns the payment summary for the draft.
func (s *BookingService) Quote(ctx context.Context, id string) (shipment.Quote, error) {
	if _, err := s.store.GetDraft(ctx, id); err != nil {
		return shipment.Quote{}, err
	}
	return shipment.CurrentQuote(), nil
}

// UpdatePayment replaces the payment step fields. An unknown method is
// rejected; missing card fields only close the continue gate.
func (s *BookingService) UpdatePayment(ctx context.Context, id string, p shipment.Payment) (models.Draft, error) {
	if p.Method != "" {
		if _, err := shipment.ParseMethod(string(p.Method)); err != nil {
			return models.Draft{}, err
		}
	}
	return s.mutate(ctx, id, models.StepPayment, func(d *models.Draft) error {
		d.Payment = p.Selection()
		return nil
	})
}

// Confirmation is what the terminal screen shows.
type Confirmation struct {
	OrderNumber string         `json:"order_number"`
	Quote       shipment.Quote `json:"quote"`
}

// ConfirmPayment ends the wizard. The draft is discarded and a
// booking.confirmed event is handed to the confirmer; a failing confirmer
// is logged and does not undo the confirmation.
func (s *BookingService) ConfirmPayment(ctx context.Context, id string) (Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. The draft must be on a complete payment step
	d, err := s.store.GetDraft(ctx, id)
	if err != nil {
		return Confirmation{}, err
	}
	if d.Step != models.StepPayment {
		return Confirmation{}, fmt.Errorf("%w: draft is on %s", ErrStepLocked, d.Step)
	}
	if err := d.Payment.Validate(); err != nil {
		return Confirmation{}, fmt.Errorf("%w: %w", ErrStepIncomplete, err)
	}

	// 2. Drop the draft
	if err := s.store.DeleteDraft(ctx, id); err != nil {
		return Confirmation{}, err
	}

	// 3. Hand the snapshot to the confirmer
	quote := shipment.CurrentQuote()
	evt := contracts.BookingConfirmed{
		OrderNumber:   shipment.OrderNumber,
		ShipmentType:  string(d.ShipmentType),
		PickupMode:    string(d.Schedule.Mode),
		PickupDate:    d.Schedule.Date,
		PickupTime:    d.Schedule.Time,
		PaymentMethod: string(d.Payment.Method),
		TotalDA:       int64(quote.Total.Amount),
		ConfirmedAt:   s.now().UTC(),
	}
	if err := s.confirmer.Confirm(ctx, evt); err != nil {
		log.Printf("booking: confirm hand-off failed for draft %s: %v", id, err)
	}

	log.Printf("booking: draft %s confirmed as %s", id, shipment.OrderNumber)
	return Confirmation{OrderNumber: shipment.OrderNumber, Quote: quote}, nil
}

// Abandon discards the draft.
func (s *BookingService) Abandon(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.GetDraft(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteDraft(ctx, id)
}

// mutate loads the draft, checks it is on step, applies fn and saves.
func (s *BookingService) mutate(ctx context.Context, id string, step models.Step, fn func(*models.Draft) error) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.GetDraft(ctx, id)
	if err != nil {
		return models.Draft{}, err
	}
	if d.Step != step {
		return models.Draft{}, fmt.Errorf("%w: draft is on %s, not %s", ErrStepLocked, d.Step, step)
	}
	if err := fn(&d); err != nil {
		return models.Draft{}, err
	}
	d.UpdatedAt = s.now()
	if err := s.store.SaveDraft(ctx, d); err != nil {
		return models.Draft{}, err
	}
	return d, nil
}
