// Package httptransport is the HTTP/JSON API of the booking service.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/carrier"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/history"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/service"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
)

type bookingService interface {
	ShipmentTypes() []shipment.Option
	Start(ctx context.Context, shipmentType string) (models.Draft, error)
	Get(ctx context.Context, id string) (models.Draft, error)
	UpdateDetails(ctx context.Context, id string, details shipment.Details) (models.Draft, error)
	ContinueDetails(ctx context.Context, id string) (models.Draft, error)
	ScheduleOptions(ctx context.Context, id string) (service.ScheduleOptions, error)
	UpdateSchedule(ctx context.Context, id string, in service.ScheduleInput) (models.Draft, error)
	ContinueSchedule(ctx context.Context, id string) (models.Draft, error)
	Quote(ctx context.Context, id string) (shipment.Quote, error)
	UpdatePayment(ctx context.Context, id string, p shipment.Payment) (models.Draft, error)
	ConfirmPayment(ctx context.Context, id string) (service.Confirmation, error)
	Abandon(ctx context.Context, id string) error
}

type historyService interface {
	Summary(ctx context.Context) (history.Summary, error)
}

type carrierService interface {
	Nearby(ctx context.Context) []carrier.Marker
	Status() carrier.Status
	SetOnline(online bool) carrier.Status
}

// Handler serves the booking API.
type Handler struct {
	bookings       bookingService
	history        historyService
	carrier        carrierService
	requestTimeout time.Duration
}

// New returns a Handler. It panics on nil dependencies. A non-positive
// requestTimeout gets a default.
func New(bookings bookingService, hist historyService, carr carrierService, requestTimeout time.Duration) *Handler {
	if bookings == nil || hist == nil || carr == nil {
		panic("httptransport.New: nil dependency")
	}
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Second
	}
	return &Handler{
		bookings:       bookings,
		history:        hist,
		carrier:        carr,
		requestTimeout: requestTimeout,
	}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /shipment-types", h.listShipmentTypes)
	mux.HandleFunc("GET /payment-methods", h.listPaymentMethods)

	mux.HandleFunc("POST /bookings", h.createBooking)
	mux.HandleFunc("GET /bookings/{id}", h.getBooking)
	mux.HandleFunc("DELETE /bookings/{id}", h.abandonBooking)
	mux.HandleFunc("PUT /bookings/{id}/details", h.updateDetails)
	mux.HandleFunc("POST /bookings/{id}/details/continue", h.continueDetails)
	mux.HandleFunc("GET /bookings/{id}/schedule/options", h.scheduleOptions)
	mux.HandleFunc("PUT /bookings/{id}/schedule", h.updateSchedule)
	mux.HandleFunc("POST /bookings/{id}/schedule/continue", h.continueSchedule)
	mux.HandleFunc("GET /bookings/{id}/quote", h.quote)
	mux.HandleFunc("PUT /bookings/{id}/payment", h.updatePayment)
	mux.HandleFunc("POST /bookings/{id}/payment/continue", h.confirmPayment)

	mux.HandleFunc("GET /history", h.listHistory)
	mux.HandleFunc("GET /carrier/nearby", h.nearby)
	mux.HandleFunc("GET /carrier/status", h.carrierStatus)
	mux.HandleFunc("PUT /carrier/status", h.setCarrierStatus)
	return mux
}

func (h *Handler) ctx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listShipmentTypes(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"shipment_types": h.bookings.ShipmentTypes()})
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"payment_methods": shipment.Methods()})
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	ctx, cancel := h.ctx(r)
	defer cancel()

	d, err := h.bookings.Start(ctx, req.ShipmentType)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, newDraftView(d))
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	h.respondDraft(w)(h.bookings.Get(ctx, r.PathValue("id")))
}

func (h *Handler) abandonBooking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	if err := h.bookings.Abandon(ctx, r.PathValue("id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	var req shipment.Details
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	ctx, cancel := h.ctx(r)
	defer cancel()
	h.respondDraft(w)(h.bookings.UpdateDetails(ctx, r.PathValue("id"), req))
}

func (h *Handler) continueDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	h.respondDraft(w)(h.bookings.ContinueDetails(ctx, r.PathValue("id")))
}

func (h *Handler) scheduleOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	opts, err := h.bookings.ScheduleOptions(ctx, r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, opts)
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	ctx, cancel := h.ctx(r)
	defer cancel()
	in := service.ScheduleInput{Mode: req.PickupMode, Date: req.Date, Time: req.Time}
	h.respondDraft(w)(h.bookings.UpdateSchedule(ctx, r.PathValue("id"), in))
}

func (h *Handler) continueSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	h.respondDraft(w)(h.bookings.ContinueSchedule(ctx, r.PathValue("id")))
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	q, err := h.bookings.Quote(ctx, r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, q)
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	ctx, cancel := h.ctx(r)
	defer cancel()
	p := shipment.Payment{
		Method:     shipment.Method(req.Method),
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	}
	h.respondDraft(w)(h.bookings.UpdatePayment(ctx, r.PathValue("id"), p))
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	c, err := h.bookings.ConfirmPayment(ctx, r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()
	s, err := h.history.Summary(ctx)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newHistoryView(s))
}

func (h *Handler) nearby(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    h.carrier.Status(),
		"shipments": h.carrier.Nearby(r.Context()),
	})
}

func (h *Handler) carrierStatus(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.carrier.Status())
}

func (h *Handler) setCarrierStatus(w http.ResponseWriter, r *http.Request) {
	var req carrierStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	if req.Online == nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "online is required")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.carrier.SetOnline(*req.Online))
}

// respondDraft writes the draft view or the error.
func (h *Handler) respondDraft(w http.ResponseWriter) func(models.Draft, error) {
	return func(d models.Draft, err error) {
		if err != nil {
			writeErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, newDraftView(d))
	}
}
