package realtime

import "sync"

// Client is a single event feed subscriber. The network connection itself is
// managed by the websocket controller.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub fans entity change events out to every connected client. A nil *Hub is
// valid and drops all events, which keeps broadcasting optional in tests.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends a message to every client. A failed write is left for the
// client's own reader loop to clean up.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.Send(message)
	}
}
