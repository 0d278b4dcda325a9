package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
)

// Confirmer hands a confirmed booking to the rest of the platform.
type Confirmer interface {
	Confirm(ctx context.Context, evt contracts.BookingConfirmed) error
}

// EventConfirmer publishes booking.confirmed straight to Kafka.
type EventConfirmer struct {
	Producer pkgkafka.Publisher
}

func (c EventConfirmer) Confirm(ctx context.Context, evt contracts.BookingConfirmed) error {
	return c.Producer.PublishEvent(ctx, evt.OrderNumber, contracts.EventBookingConfirmed, evt)
}

// workflowStarter is the part of the Temporal client we call.
type workflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// WorkflowConfirmer starts ConfirmBookingWorkflow on the orchestrator.
// The workflow publishes the event and queues the email itself.
type WorkflowConfirmer struct {
	Temporal  workflowStarter
	TaskQueue string
}

func (c WorkflowConfirmer) Confirm(ctx context.Context, evt contracts.BookingConfirmed) error {
	options := client.StartWorkflowOptions{
		ID:        "confirm-booking-" + uuid.NewString(),
		TaskQueue: c.TaskQueue,
	}
	run, err := c.Temporal.ExecuteWorkflow(ctx, options, contracts.ConfirmBookingWorkflowName, evt)
	if err != nil {
		return err
	}
	log.Printf("booking: started workflow %s run %s", run.GetID(), run.GetRunID())
	return nil
}

// LogConfirmer only logs. Used when neither Kafka nor Temporal is configured.
type LogConfirmer struct{}

func (LogConfirmer) Confirm(ctx context.Context, evt contracts.BookingConfirmed) error {
	log.Printf("booking: confirmed %s (%s, %s) no event sink configured", evt.OrderNumber, evt.ShipmentType, evt.PaymentMethod)
	return nil
}
