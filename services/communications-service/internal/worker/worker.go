// Package worker consumes notification jobs from a RabbitMQ queue.
package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Muskhoops/FRETXPRESS/services/communications-service/internal/notify"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
)

const sendTimeout = 10 * time.Second

type Worker struct {
	name   string
	sender notify.Sender
}

func New(name string, sender notify.Sender) *Worker {
	return &Worker{name: name, sender: sender}
}

// Run handles deliveries until ctx is cancelled or the channel closes.
// A job in flight is finished before Run returns.
func (w *Worker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	log.Printf("%s worker: started", w.name)
	for {
		select {
		case <-ctx.Done():
			log.Printf("%s worker: received stop signal, shutting down...", w.name)
			return
		case d, ok := <-deliveries:
			if !ok {
				log.Printf("%s worker: delivery channel closed", w.name)
				return
			}
			w.handle(d)
		}
	}
}

// handle acks on success. A failed send is requeued once; a second
// failure or an unreadable body is rejected without requeue.
func (w *Worker) handle(d amqp.Delivery) {
	var job contracts.NotificationJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		log.Printf("%s worker: rejecting malformed job: %v", w.name, err)
		if err := d.Reject(false); err != nil {
			log.Printf("%s worker: reject failed: %v", w.name, err)
		}
		return
	}

	// not tied to the run ctx so shutdown does not abort a send midway
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	err := w.sender.Send(ctx, job)
	cancel()

	if err != nil {
		requeue := !d.Redelivered
		log.Printf("%s worker: order %s failed (requeue=%v): %v", w.name, job.Booking.OrderNumber, requeue, err)
		if err := d.Nack(false, requeue); err != nil {
			log.Printf("%s worker: nack failed: %v", w.name, err)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		log.Printf("%s worker: failed to acknowledge message: %v", w.name, err)
		return
	}
	log.Printf("✅ %s worker: order %s done", w.name, job.Booking.OrderNumber)
}
