package workflow

import (
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/workflow"

	"github.com/Muskhoops/FRETXPRESS/services/workflow-orchestrator/internal/activities"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
)

// Registry is the part of worker.Worker (and the test environment) used for registration.
type Registry interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register binds the workflow and activities under the names the booking
// service starts them by.
func Register(r Registry, a *activities.BookingActivities) {
	r.RegisterWorkflowWithOptions(ConfirmBooking, workflow.RegisterOptions{Name: contracts.ConfirmBookingWorkflowName})
	r.RegisterActivityWithOptions(a.PublishBookingConfirmed, activity.RegisterOptions{Name: activities.PublishBookingConfirmedName})
	r.RegisterActivityWithOptions(a.EnqueueBookingEmail, activity.RegisterOptions{Name: activities.EnqueueBookingEmailName})
}
