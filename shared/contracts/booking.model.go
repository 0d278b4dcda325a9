package contracts // <-- shared across booking, communications and workflow services

import (
	"encoding/json"
	"time"
)

// Event names carried in the envelope's "event" field.
const (
	EventBookingConfirmed = "booking.confirmed"
	EventContactSubmitted = "contact.submitted"
)

// Envelope is the JSON shape of every message on the events topic.
// Payload is kept raw so consumers can dispatch on Event first.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// BookingConfirmed is published once a booking wizard reaches its terminal step.
// It carries a snapshot of what was chosen, never the in-progress draft itself.
type BookingConfirmed struct {
	OrderNumber   string    `json:"order_number"`
	ShipmentType  string    `json:"shipment_type"`
	PickupMode    string    `json:"pickup_mode"`
	PickupDate    string    `json:"pickup_date"`
	PickupTime    string    `json:"pickup_time,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	TotalDA       int64     `json:"total_da"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

// ContactSubmitted is published after the website relayed a contact form.
type ContactSubmitted struct {
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Notification job types queued on RabbitMQ.
const (
	JobBookingEmail = "booking_email"
	JobBookingSMS   = "booking_sms"
)

// NotificationJob is the body of an email/SMS queue message.
type NotificationJob struct {
	Type    string           `json:"type"`
	Booking BookingConfirmed `json:"booking"`
}

// Temporal names shared by the booking service (starter) and the orchestrator (worker).
const (
	BookingTaskQueue           = "BOOKING_TASK_QUEUE"
	ConfirmBookingWorkflowName = "ConfirmBookingWorkflow"
)
