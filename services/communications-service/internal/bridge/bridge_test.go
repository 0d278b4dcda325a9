package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	pkgrabbit "github.com/Muskhoops/FRETXPRESS/shared/rabbitmq"
)

type published struct {
	queue string
	body  []byte
}

type fakeQueues struct {
	sent   []published
	failOn string
}

func (f *fakeQueues) Publish(_ context.Context, queue string, body []byte) error {
	if queue == f.failOn {
		return errors.New("channel closed")
	}
	f.sent = append(f.sent, published{queue: queue, body: body})
	return nil
}

func envelope(t *testing.T, event string, payload any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	b, err := json.Marshal(contracts.Envelope{Event: event, Payload: raw})
	require.NoError(t, err)
	return b
}

var booking = contracts.BookingConfirmed{
	OrderNumber:   "3257-9821",
	ShipmentType:  "package",
	PickupMode:    "appointment",
	PickupDate:    "2025-06-18",
	PickupTime:    "10:00",
	PaymentMethod: "edahabia",
	TotalDA:       800000,
	ConfirmedAt:   time.Date(2025, time.June, 18, 9, 0, 0, 0, time.UTC),
}

func TestHandle_BookingConfirmedQueuesBothJobs(t *testing.T) {
	q := &fakeQueues{}
	d := NewDispatcher(q)

	err := d.Handle(context.Background(), []byte("3257-9821"), envelope(t, contracts.EventBookingConfirmed, booking))
	require.NoError(t, err)

	require.Len(t, q.sent, 2)
	assert.Equal(t, pkgrabbit.EmailQueue, q.sent[0].queue)
	assert.Equal(t, pkgrabbit.SMSQueue, q.sent[1].queue)

	var job contracts.NotificationJob
	require.NoError(t, json.Unmarshal(q.sent[1].body, &job))
	assert.Equal(t, contracts.JobBookingSMS, job.Type)
	assert.Equal(t, booking, job.Booking)
}

func TestHandle_QueueFailureIsRetried(t *testing.T) {
	for _, queue := range []string{pkgrabbit.EmailQueue, pkgrabbit.SMSQueue} {
		t.Run(queue, func(t *testing.T) {
			q := &fakeQueues{failOn: queue}
			err := NewDispatcher(q).Handle(context.Background(), nil, envelope(t, contracts.EventBookingConfirmed, booking))
			assert.Error(t, err)
		})
	}
}

func TestHandle_SkipsWhatCannotBeProcessed(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
	}{
		{"not json", []byte("garbage")},
		{"bad payload", []byte(`{"event":"booking.confirmed","payload":"oops"}`)},
		{"unknown event", []byte(`{"event":"shipment.created","payload":{}}`)},
		{"contact", envelope(t, contracts.EventContactSubmitted, contracts.ContactSubmitted{Name: "Jean"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQueues{}
			assert.NoError(t, NewDispatcher(q).Handle(context.Background(), nil, tt.value))
			assert.Empty(t, q.sent)
		})
	}
}
