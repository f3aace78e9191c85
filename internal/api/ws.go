package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crypticpeace/fyp/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-session app; cross-origin access is governed by the CORS
	// configuration on the REST surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

// handleCounselorWS streams the counselor chat over a websocket. The client
// sends {"body": "..."} frames; the server pushes every appended message,
// including the delayed counselor auto-replies.
func (rt *Router) handleCounselorWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		rt.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// All frames go out through one channel; the connection only ever has
	// a single writer.
	outgoing := make(chan any, 16)
	unsubscribe := rt.counselor.Subscribe(func(m models.ChatMessage) {
		select {
		case outgoing <- m:
		default:
			// Slow consumer; drop rather than block the session.
		}
	})
	defer unsubscribe()

	// Replay the existing log so the client starts with full history.
	for _, m := range rt.counselor.History() {
		if err := writeWS(conn, m); err != nil {
			return
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var req struct {
				Body string `json:"body"`
			}
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			if _, err := rt.counselor.Send(req.Body); err != nil {
				select {
				case outgoing <- map[string]string{"error": err.Error()}:
				default:
				}
			}
		}
	}()

	for {
		select {
		case v := <-outgoing:
			if err := writeWS(conn, v); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeWS(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(v)
}
