package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Muskhoops/FRETXPRESS/services/workflow-orchestrator/internal/activities"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
)

// ConfirmBooking publishes the booking.confirmed event, then queues the
// confirmation email. Each step is retried with backoff; the email is
// only queued once the event is out.
func ConfirmBooking(ctx workflow.Context, booking contracts.BookingConfirmed) error {
	retryPolicy := &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    time.Minute,
		MaximumAttempts:    100,
	}
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy:         retryPolicy,
	})

	logger := workflow.GetLogger(ctx)
	logger.Info("confirming booking", "order", booking.OrderNumber)

	if err := workflow.ExecuteActivity(ctx, activities.PublishBookingConfirmedName, booking).Get(ctx, nil); err != nil {
		return err
	}
	if err := workflow.ExecuteActivity(ctx, activities.EnqueueBookingEmailName, booking).Get(ctx, nil); err != nil {
		return err
	}

	logger.Info("booking confirmed", "order", booking.OrderNumber)
	return nil
}
