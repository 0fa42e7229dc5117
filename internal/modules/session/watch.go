package session

import (
	"encoding/json"
	"net/http"

	"github.com/thorvi/playtrack/internal/modules/session/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleWatch upgrades the connection to a WebSocket and streams the session
// list to the peer on every poll delivery until the peer disconnects. Each
// connection owns its own subscription.
func HandleWatch(store *Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		send := make(chan []byte, 8)
		done := make(chan struct{})

		sub := store.Subscribe(func(sessions []domain.Session) {
			payload, err := json.Marshal(sessions)
			if err != nil {
				logger.Error("failed to serialize sessions", zap.Error(err))
				return
			}

			// Drop the delivery when the writer lags - the next poll
			// supersedes it anyway.
			select {
			case send <- payload:
			default:
			}
		})

		go func() {
			defer func() {
				if err := conn.Close(); err != nil {
					logger.Warn("failed to close websocket", zap.Error(err))
				}
			}()

			for {
				select {
				case <-done:
					return
				case payload := <-send:
					if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
						return
					}
				}
			}
		}()

		// Read loop exists only to observe the peer closing the socket.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		sub.Unsubscribe()
		close(done)
	}
}
