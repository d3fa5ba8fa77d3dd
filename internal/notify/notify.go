// Package notify emits lifecycle events (install/remove/update transitions)
// to the assistant message bus over a websocket connection. Emission is
// fire-and-forget: a bus that is down or unreachable never fails the
// operation being reported.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Notifier delivers lifecycle events. Implementations must never return an
// operational error to callers; delivery is best-effort.
type Notifier interface {
	Emit(msgType string, data map[string]any)
	Close()
}

// Bus is a websocket-backed Notifier. The connection is dialed lazily on
// first Emit and reused afterwards.
type Bus struct {
	url string
	log zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// message is the wire format understood by the bus.
type message struct {
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
	Context map[string]any `json:"context"`
}

// NewBus returns a Notifier that emits to the websocket at url.
// An empty url yields a no-op Notifier.
func NewBus(url string, log zerolog.Logger) Notifier {
	if url == "" {
		return Nop{}
	}
	return &Bus{url: url, log: log}
}

// Emit sends one event. Dial and write failures are logged at debug level
// and otherwise swallowed.
func (b *Bus) Emit(msgType string, data map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		dialer := websocket.Dialer{HandshakeTimeout: 3 * time.Second}
		conn, _, err := dialer.Dial(b.url, nil)
		if err != nil {
			b.log.Debug().Err(err).Str("url", b.url).Msg("message bus unreachable")
			return
		}
		b.conn = conn
	}

	payload, err := json.Marshal(message{Type: msgType, Data: data, Context: map[string]any{}})
	if err != nil {
		b.log.Debug().Err(err).Str("type", msgType).Msg("encoding bus message")
		return
	}

	if err := b.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		b.log.Debug().Err(err).Str("type", msgType).Msg("writing bus message")
		b.conn.Close()
		b.conn = nil
	}
}

// Close tears down the connection if one was established.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
}

// Nop discards all events.
type Nop struct{}

func (Nop) Emit(string, map[string]any) {}
func (Nop) Close()                      {}
