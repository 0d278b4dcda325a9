package models

import (
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

// Step is the wizard screen a draft is on.
type Step string

const (
	StepDetails   Step = "details"
	StepSchedule  Step = "schedule"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

// Draft is an in-progress shipment request. It lives only in the draft
// store and is dropped on confirmation, abandonment or expiry.
type Draft struct {
	ID           string                    `json:"id" msgpack:"id"`
	Step         Step                      `json:"step" msgpack:"step"`
	ShipmentType shipment.Type             `json:"shipment_type" msgpack:"shipment_type"`
	Details      shipment.Details          `json:"details" msgpack:"details"`
	Schedule     shipment.Schedule         `json:"schedule" msgpack:"schedule"`
	Payment      shipment.PaymentSelection `json:"-" msgpack:"payment"`
	CreatedAt    time.Time                 `json:"created_at" msgpack:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at" msgpack:"updated_at"`
}

// CanContinue reports whether the current step's required fields are filled.
func (d Draft) CanContinue() bool {
	switch d.Step {
	case StepDetails:
		return d.Details.CanContinue()
	case StepSchedule:
		return d.Schedule.CanContinue()
	case StepPayment:
		return d.Payment.CanContinue()
	}
	return false
}
