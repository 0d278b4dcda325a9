// Package bridge turns booking events read from Kafka into notification
// jobs on RabbitMQ.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	pkgrabbit "github.com/Muskhoops/FRETXPRESS/shared/rabbitmq"
)

// Dispatcher is a kafka.Handler. A nil return commits the offset.
type Dispatcher struct {
	jobs pkgrabbit.Publisher
}

func NewDispatcher(jobs pkgrabbit.Publisher) *Dispatcher {
	return &Dispatcher{jobs: jobs}
}

// Handle routes one topic message. Messages that can never be processed
// (bad JSON, unknown event) are logged and committed so they do not
// block the partition. Queue failures are returned so Kafka redelivers.
func (d *Dispatcher) Handle(ctx context.Context, key []byte, value []byte) error {
	var env contracts.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		log.Printf("bridge: dropping malformed message key=%s: %v", key, err)
		return nil
	}

	switch env.Event {
	case contracts.EventBookingConfirmed:
		var booking contracts.BookingConfirmed
		if err := json.Unmarshal(env.Payload, &booking); err != nil {
			log.Printf("bridge: dropping malformed %s payload key=%s: %v", env.Event, key, err)
			return nil
		}
		return d.enqueueBooking(ctx, booking)
	case contracts.EventContactSubmitted:
		// the relay already emailed the team
		return nil
	default:
		log.Printf("bridge: ignoring event %q key=%s", env.Event, key)
		return nil
	}
}

// enqueueBooking publishes the email job then the SMS job. If the SMS
// enqueue fails the whole event is retried, so the email may go twice.
func (d *Dispatcher) enqueueBooking(ctx context.Context, booking contracts.BookingConfirmed) error {
	email := contracts.NotificationJob{Type: contracts.JobBookingEmail, Booking: booking}
	if err := pkgrabbit.PublishJSON(ctx, d.jobs, pkgrabbit.EmailQueue, email); err != nil {
		return fmt.Errorf("bridge: enqueue email for %s: %w", booking.OrderNumber, err)
	}

	sms := contracts.NotificationJob{Type: contracts.JobBookingSMS, Booking: booking}
	if err := pkgrabbit.PublishJSON(ctx, d.jobs, pkgrabbit.SMSQueue, sms); err != nil {
		return fmt.Errorf("bridge: enqueue sms for %s: %w", booking.OrderNumber, err)
	}

	log.Printf("🌉 bridge: order %s queued for email and sms", booking.OrderNumber)
	return nil
}
