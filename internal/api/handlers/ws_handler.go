package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Println("WebSocket Origin:", r.Header.Get("Origin"))
		log.Println("WebSocket Host:", r.Host)
		return true
	},
}

// LeadFeedHandler streams newly captured leads of the session's account to
// the admin dashboard over a websocket.
func LeadFeedHandler(feed *application.LeadFeed, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := utils.GetAccountIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
			return
		}

		subID, events := feed.Subscribe()
		defer feed.Unsubscribe(subID)
		if m != nil {
			m.FeedSubscribers.Inc()
			defer m.FeedSubscribers.Dec()
		}

		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		done := make(chan struct{})

		go func() {
			defer func() { _ = conn.Close() }()

			pingTicker := time.NewTicker(pingPeriod)
			defer pingTicker.Stop()

			for {
				select {
				case ev, ok := <-events:
					if !ok {
						_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
						return
					}
					// Events of other tenants never leave the server.
					if ev.AccountID != accountID {
						continue
					}

					payload, err := json.Marshal(ev)
					if err != nil {
						continue
					}
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
						return
					}

				case <-pingTicker.C:
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						return
					}

				case <-done:
					return
				}
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket error: %v", err)
				}
				break
			}
		}
		close(done)
	}
}
