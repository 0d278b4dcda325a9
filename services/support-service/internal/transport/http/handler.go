// Package httptransport serves the support chat over HTTP and WebSocket.
package httptransport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/support-service/internal/chat"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
)

type Handler struct {
	chat           *chat.Service
	ws             *WSHandler
	requestTimeout time.Duration
}

func New(svc *chat.Service, allowedOrigins []string, requestTimeout time.Duration) *Handler {
	if svc == nil {
		panic("httptransport.New: nil chat service")
	}
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Second
	}
	return &Handler{
		chat:           svc,
		ws:             NewWSHandler(svc, allowedOrigins),
		requestTimeout: requestTimeout,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "conversations": h.chat.Count()})
	})
	mux.Handle("GET /ws/chat", h.ws)
	mux.HandleFunc("POST /reply", h.reply)
	mux.HandleFunc("POST /conversations", h.startConversation)
	mux.HandleFunc("GET /conversations/{id}", h.getConversation)
	mux.HandleFunc("POST /conversations/{id}/messages", h.sendMessage)
	mux.HandleFunc("DELETE /conversations/{id}", h.endConversation)
	return mux
}

type textRequest struct {
	Text string `json:"text"`
}

type messageView struct {
	chat.Message
	Time string `json:"time"`
}

func toMessageView(m chat.Message) messageView {
	return messageView{Message: m, Time: m.DisplayTime()}
}

type conversationView struct {
	ID       string        `json:"id"`
	Messages []messageView `json:"messages"`
}

func toConversationView(c *chat.Conversation) conversationView {
	msgs := c.Messages()
	out := conversationView{ID: c.ID, Messages: make([]messageView, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, toMessageView(m))
	}
	return out
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	topic, reply, err := h.chat.Classify(req.Text)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"topic": topic, "reply": reply})
}

func (h *Handler) startConversation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	c, err := h.chat.Start(ctx)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toConversationView(c))
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	c, err := h.chat.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toConversationView(c))
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	m, err := h.chat.Send(ctx, r.PathValue("id"), req.Text)
	if err != nil {
		writeErr(w, err)
		return
	}
	// the bot reply shows up on the next GET
	httpx.WriteJSON(w, http.StatusAccepted, toMessageView(m))
}

func (h *Handler) endConversation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.chat.End(ctx, r.PathValue("id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrBlankMessage):
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, chat.ErrConversationNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		httpx.WriteError(w, http.StatusGatewayTimeout, "timeout", "request timed out")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
