package httptransport

import (
	"context"
	"errors"
	"net/http"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/service"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/store"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
)

// kindToStatus maps error classification kinds to HTTP status codes.
var kindToStatus = map[string]int{
	"bad_request":     http.StatusBadRequest,
	"not_found":       http.StatusNotFound,
	"conflict":        http.StatusConflict,
	"step_incomplete": http.StatusUnprocessableEntity,
	"timeout":         http.StatusGatewayTimeout,
	"canceled":        http.StatusRequestTimeout,
}

// errorKind classifies err.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrDraftNotFound):
		return "not_found"
	case errors.Is(err, service.ErrStepIncomplete):
		return "step_incomplete"
	case errors.Is(err, service.ErrStepLocked):
		return "conflict"
	case errors.Is(err, httpx.ErrInvalidJSON),
		errors.Is(err, shipment.ErrUnknownShipmentType),
		errors.Is(err, shipment.ErrUnknownPickupMode),
		errors.Is(err, shipment.ErrPickupModeRequired),
		errors.Is(err, shipment.ErrDateRequired),
		errors.Is(err, shipment.ErrDateOutOfRange),
		errors.Is(err, shipment.ErrUnknownTimeSlot),
		errors.Is(err, shipment.ErrUnknownPaymentMethod):
		return "bad_request"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if s, ok := kindToStatus[errorKind(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// writeErr hides internal error text from clients.
func writeErr(w http.ResponseWriter, err error) {
	kind := errorKind(err)
	msg := err.Error()
	if kind == "internal" {
		msg = "internal error"
	}
	httpx.WriteError(w, httpStatus(err), kind, msg)
}
