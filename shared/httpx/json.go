// Package httpx holds the HTTP plumbing shared by the services:
// JSON encoding, the error body and the access log middleware.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorPayload is the body of every error response.
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorPayload `json:"error"`
}

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error":{"kind":...,"message":...}}.
func WriteError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSON(w, status, errorResponse{Error: ErrorPayload{Kind: kind, Message: message}})
}

// ErrInvalidJSON is returned by DecodeJSON for malformed or trailing input.
var ErrInvalidJSON = errors.New("invalid JSON")

// DecodeJSON decodes exactly one JSON value into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrInvalidJSON
	}
	return nil
}
