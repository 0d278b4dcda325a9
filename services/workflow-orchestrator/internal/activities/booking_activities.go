package activities

import (
	"context"
	"log"

	"go.temporal.io/sdk/activity"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
	pkgrabbit "github.com/Muskhoops/FRETXPRESS/shared/rabbitmq"
)

// Activity names the workflow schedules.
const (
	PublishBookingConfirmedName = "ACTIVITY_PublishBookingConfirmed"
	EnqueueBookingEmailName     = "ACTIVITY_EnqueueBookingEmail"
)

// BookingActivities carries the infrastructure the activities write to.
// A nil Producer or Jobs turns that activity into a logged no-op.
type BookingActivities struct {
	Producer pkgkafka.Publisher
	Jobs     pkgrabbit.Publisher
}

// PublishBookingConfirmed announces the booking on the events topic.
func (a *BookingActivities) PublishBookingConfirmed(ctx context.Context, booking contracts.BookingConfirmed) error {
	logger := activity.GetLogger(ctx)
	if a.Producer == nil {
		log.Printf("workflow: kafka not configured, %s for %s not published", contracts.EventBookingConfirmed, booking.OrderNumber)
		return nil
	}
	logger.Info("publishing booking event", "order", booking.OrderNumber)
	return a.Producer.PublishEvent(ctx, booking.OrderNumber, contracts.EventBookingConfirmed, booking)
}

// EnqueueBookingEmail puts the confirmation email job straight on the queue.
func (a *BookingActivities) EnqueueBookingEmail(ctx context.Context, booking contracts.BookingConfirmed) error {
	if a.Jobs == nil {
		log.Printf("workflow: rabbitmq not configured, email for %s not queued", booking.OrderNumber)
		return nil
	}
	job := contracts.NotificationJob{Type: contracts.JobBookingEmail, Booking: booking}
	return pkgrabbit.PublishJSON(ctx, a.Jobs, pkgrabbit.EmailQueue, job)
}
