package http

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"distaz-service/internal/core/usecases"
	"distaz-service/internal/pkg/metrics"
)

// wsComputeRequest carries the four raw coordinate inputs. Clients send
// one message per input change; the server answers each with the full
// route result, so the map view can re-render reactively.
type wsComputeRequest struct {
	StartLat string `json:"start_lat"`
	StartLon string `json:"start_lon"`
	DestLat  string `json:"dest_lat"`
	DestLon  string `json:"dest_lon"`
}

// WebSocketHandler returns a handler that upgrades to WebSocket and
// recomputes the route for every client message.
// Clients send JSON: {"start_lat":"1.35","start_lon":"103.82","dest_lat":"35.69","dest_lon":"139.69"}
func WebSocketHandler(routes *usecases.RouteService) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		remoteAddr := c.RemoteAddr().String()
		log.Printf("ws client connected: %s", remoteAddr)
		metrics.ActiveWebSockets.Inc()
		defer metrics.ActiveWebSockets.Dec()

		var mu sync.Mutex

		// Helper: thread-safe write
		writeJSON := func(v interface{}) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return c.WriteMessage(websocket.TextMessage, data)
		}

		// Keep-alive ping
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mu.Lock()
					err := c.WriteMessage(websocket.PingMessage, nil)
					mu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				break
			}

			var req wsComputeRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				_ = writeJSON(map[string]string{"error": "invalid JSON"})
				continue
			}

			result := routes.Compute(context.Background(),
				req.StartLat, req.StartLon, req.DestLat, req.DestLon)
			_ = writeJSON(result)
		}

		close(done)
		log.Printf("ws client disconnected: %s", remoteAddr)
	}
}
