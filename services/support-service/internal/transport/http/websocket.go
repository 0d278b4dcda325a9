package httptransport

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Muskhoops/FRETXPRESS/services/support-service/internal/chat"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// wsFrame is every server-to-client frame.
type wsFrame struct {
	Type           string       `json:"type"` // connected, message, error
	ConversationID string       `json:"conversation_id,omitempty"`
	Message        *messageView `json:"message,omitempty"`
	Text           string       `json:"text,omitempty"`
}

type wsIncoming struct {
	Text string `json:"text"`
}

// WSHandler runs one conversation per connection; it ends when the socket closes.
type WSHandler struct {
	chat           *chat.Service
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

func NewWSHandler(svc *chat.Service, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &WSHandler{chat: svc, allowedOrigins: origins}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("support: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// detached from r: the hijacked request context is not reliable
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := h.chat.Start(ctx)
	if err != nil {
		log.Printf("support: start conversation: %v", err)
		return
	}
	defer h.chat.End(context.Background(), c.ID)

	// snapshot and subscribe before reading, so no message is missed or sent twice
	updates, unsubscribe := c.Subscribe(32)
	defer unsubscribe()
	history := c.Messages()

	errs := make(chan string, 4)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writeLoop(ctx, conn, c.ID, history, updates, errs)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("support: websocket closed unexpectedly: %v", err)
			}
			break
		}
		if _, err := h.chat.Send(ctx, c.ID, frameText(data)); err != nil {
			select {
			case errs <- err.Error():
			default:
			}
		}
	}

	cancel()
	<-writerDone
}

// frameText accepts either {"text": "..."} or a bare text frame.
func frameText(data []byte) string {
	var in wsIncoming
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal(data, &in) == nil {
		return in.Text
	}
	return string(data)
}

// writeLoop is the only goroutine that writes to conn.
func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, id string, history []chat.Message, updates <-chan chat.Message, errs <-chan string) {
	write := func(f wsFrame) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(f); err != nil {
			log.Printf("support: websocket write failed: %v", err)
			return false
		}
		return true
	}

	if !write(wsFrame{Type: "connected", ConversationID: id}) {
		return
	}
	for _, m := range history {
		mv := toMessageView(m)
		if !write(wsFrame{Type: "message", Message: &mv}) {
			return
		}
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case m, ok := <-updates:
			if !ok {
				return
			}
			mv := toMessageView(m)
			if !write(wsFrame{Type: "message", Message: &mv}) {
				return
			}
		case text := <-errs:
			if !write(wsFrame{Type: "error", Text: text}) {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
