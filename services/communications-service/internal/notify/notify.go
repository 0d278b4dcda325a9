// Package notify renders and "sends" booking notifications. Delivery is
// simulated: messages are written to the log.
package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
)

// Sender delivers one notification job.
type Sender interface {
	Send(ctx context.Context, job contracts.NotificationJob) error
}

// Email is a rendered confirmation email.
type Email struct {
	Subject string
	Body    string
}

func formatDA(amount int64) string {
	return message.NewPrinter(language.English).Sprintf("%d DA", amount)
}

func pickup(b contracts.BookingConfirmed) string {
	if b.PickupTime == "" {
		return b.PickupDate
	}
	return b.PickupDate + " à " + b.PickupTime
}

// RenderEmail builds the confirmation email for a booking.
func RenderEmail(b contracts.BookingConfirmed) Email {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Votre réservation %s est confirmée.\n", b.OrderNumber)
	fmt.Fprintf(&sb, "Type d'envoi : %s\n", b.ShipmentType)
	fmt.Fprintf(&sb, "Enlèvement : %s\n", pickup(b))
	fmt.Fprintf(&sb, "Paiement : %s\n", b.PaymentMethod)
	fmt.Fprintf(&sb, "Total : %s\n", formatDA(b.TotalDA))
	return Email{
		Subject: "DropiGo - Confirmation de la commande " + b.OrderNumber,
		Body:    sb.String(),
	}
}

// RenderSMS builds the one-line SMS for a booking.
func RenderSMS(b contracts.BookingConfirmed) string {
	return fmt.Sprintf("DropiGo: commande %s confirmée, enlèvement %s, total %s.",
		b.OrderNumber, pickup(b), formatDA(b.TotalDA))
}

// LogEmailSender writes emails to the log instead of an SMTP relay.
type LogEmailSender struct{}

func (LogEmailSender) Send(ctx context.Context, job contracts.NotificationJob) error {
	if job.Type != contracts.JobBookingEmail {
		return fmt.Errorf("notify: email sender got %q job", job.Type)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e := RenderEmail(job.Booking)
	log.Printf("📧 email: %s\n%s", e.Subject, e.Body)
	return nil
}

// LogSMSSender writes SMS text to the log.
type LogSMSSender struct{}

func (LogSMSSender) Send(ctx context.Context, job contracts.NotificationJob) error {
	if job.Type != contracts.JobBookingSMS {
		return fmt.Errorf("notify: sms sender got %q job", job.Type)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Printf("📱 sms: %s", RenderSMS(job.Booking))
	return nil
}
