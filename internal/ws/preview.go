// Package ws streams rendered frames to browser clients over websockets,
// so a strip can be previewed without hardware attached.
package ws

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type framePayload struct {
	Frame  uint64 `json:"frame"`
	Pixels string `json:"pixels"` // base64 raw RGB(W) bytes
}

// Preview implements the led.Driver contract and broadcasts each frame to
// all connected clients. Broadcast failures drop the client, never the
// animation: Write always returns nil.
type Preview struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	frameID  uint64
	lastEmit time.Time
	throttle time.Duration
	upgrader websocket.Upgrader
}

func NewPreview() *Preview {
	return &Preview{
		clients:  map[*websocket.Conn]bool{},
		throttle: 50 * time.Millisecond, // ~20 FPS to the UI
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleFrames upgrades the connection and registers the client for frame
// broadcasts. The read loop exists only to notice the close.
func (p *Preview) HandleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("preview upgrade failed")
		return
	}
	p.mu.Lock()
	p.clients[conn] = true
	n := len(p.clients)
	p.mu.Unlock()
	log.Info().Int("clients", n).Msg("preview client connected")

	go func() {
		defer func() {
			p.mu.Lock()
			delete(p.clients, conn)
			p.mu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleHealth is a trivial liveness endpoint.
func (p *Preview) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Write broadcasts the frame, throttled so slow UIs don't see every
// hardware frame.
func (p *Preview) Write(rgb []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameID++
	now := time.Now()
	if now.Sub(p.lastEmit) < p.throttle {
		return nil
	}
	p.lastEmit = now

	if len(p.clients) == 0 {
		return nil
	}
	msg, err := json.Marshal(framePayload{
		Frame:  p.frameID,
		Pixels: base64.StdEncoding.EncodeToString(rgb),
	})
	if err != nil {
		return nil
	}
	for conn := range p.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(p.clients, conn)
			_ = conn.Close()
		}
	}
	return nil
}

func (p *Preview) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for conn := range p.clients {
		_ = conn.Close()
	}
	p.clients = map[*websocket.Conn]bool{}
	return nil
}
