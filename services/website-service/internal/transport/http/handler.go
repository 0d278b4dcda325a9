// Package httptransport serves the marketing-site API.
package httptransport

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/catalog"
	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/contact"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
	"github.com/Muskhoops/FRETXPRESS/shared/validation"
)

type contactService interface {
	Submit(ctx context.Context, s contact.Submission) error
}

type Handler struct {
	contact        contactService
	requestTimeout time.Duration
}

func New(svc contactService, requestTimeout time.Duration) *Handler {
	if svc == nil {
		panic("httptransport.New: nil contact service")
	}
	if requestTimeout <= 0 {
		requestTimeout = 15 * time.Second
	}
	return &Handler{contact: svc, requestTimeout: requestTimeout}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /services", h.listServices)
	mux.HandleFunc("GET /services/{slug}", h.getService)
	mux.HandleFunc("GET /contact", h.contactInfo)
	mux.HandleFunc("POST /contact", h.submitContact)
	return mux
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"services": catalog.Services()})
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	card, ok := catalog.Service(r.PathValue("slug"))
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "service not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, card)
}

func (h *Handler) contactInfo(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, catalog.Contact())
}

type submitResponse struct {
	Submitted bool   `json:"submitted"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	sub, err := readSubmission(w, r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	err = h.contact.Submit(ctx, sub)
	var verr *validation.Error
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, submitResponse{Submitted: true, Message: contact.SuccessMessage})
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		// relay problems all read the same to the visitor
		httpx.WriteJSON(w, http.StatusBadGateway, submitResponse{Error: contact.FailureMessage})
	}
}

// readSubmission accepts the JSON body of the API or a plain HTML form post.
func readSubmission(w http.ResponseWriter, r *http.Request) (contact.Submission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return contact.Submission{}, err
		}
		return contact.FromForm(r.PostForm), nil
	case "multipart/form-data":
		// the argument only caps memory; the reader caps the body
		r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
		if err := r.ParseMultipartForm(httpx.MaxBodyBytes); err != nil {
			return contact.Submission{}, err
		}
		return contact.FromForm(r.PostForm), nil
	}
	var sub contact.Submission
	if err := httpx.DecodeJSON(r, &sub); err != nil {
		return contact.Submission{}, err
	}
	return sub, nil
}
