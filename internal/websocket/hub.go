package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/pkg/events"
)

// Hub fans ledger events out to every connected dashboard.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
		logger:     log,
	}
}

// Run owns client registration until ctx is cancelled. After that, join
// refuses new clients and leave returns immediately.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"remote": client.Remote, "clients": total})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
		}
	}
}

// join hands a client to Run. It reports false once the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Clients reports how many dashboards are connected.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish pushes an event to all local clients. Clients whose buffer is full
// are dropped rather than blocking the ledger consumer.
func (h *Hub) Publish(_ context.Context, event events.Event) error {
	data, err := json.Marshal(map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})
	if err != nil {
		return err
	}

	var stale []*Client
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	if len(stale) > 0 {
		h.mu.Lock()
		for _, client := range stale {
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
		}
		h.mu.Unlock()
		h.logger.Warn("Hub", "Dropped slow clients", map[string]interface{}{"count": len(stale)})
	}
	return nil
}
