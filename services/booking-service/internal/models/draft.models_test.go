package models

import (
	"testing"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

func TestDraft_CanContinueFollowsCurrentStep(t *testing.T) {
	d := Draft{
		Step:     StepDetails,
		Details:  shipment.Details{Volume: "1", Weight: "1"},
		Schedule: shipment.Schedule{},
	}
	if !d.CanContinue() {
		t.Fatal("details step is complete")
	}

	d.Step = StepSchedule
	if d.CanContinue() {
		t.Fatal("schedule step is empty")
	}

	d.Step = StepPayment
	d.Payment = shipment.PaymentSelection{Method: shipment.Edahabia}
	if !d.CanContinue() {
		t.Fatal("edahabia payment is complete")
	}

	d.Step = StepConfirmed
	if d.CanContinue() {
		t.Fatal("a confirmed draft has nowhere to go")
	}
}
