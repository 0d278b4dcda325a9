package httptransport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/service"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/store"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
		want int
	}{
		{"stale date on continue", fmt.Errorf("%w: %w: %q", service.ErrStepIncomplete, shipment.ErrDateOutOfRange, "2025-06-17"), "step_incomplete", http.StatusUnprocessableEntity},
		{"date out of range on edit", fmt.Errorf("%w: %q", shipment.ErrDateOutOfRange, "2030-01-01"), "bad_request", http.StatusBadRequest},
		{"missing draft", store.ErrDraftNotFound, "not_found", http.StatusNotFound},
		{"locked step", service.ErrStepLocked, "conflict", http.StatusConflict},
		{"deadline", context.DeadlineExceeded, "timeout", http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), "internal", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, errorKind(tt.err))
			assert.Equal(t, tt.want, httpStatus(tt.err))
		})
	}
}
