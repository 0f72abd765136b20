package bridge

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
)

// Hub tracks connected clients by UI surface and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewHub creates a Hub with no clients.
func NewHub(log logger.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  log,
		metrics: m,
	}
}

// EmitTo queues event for every client on surface. It never blocks: a client
// whose send buffer is full misses the event.
func (h *Hub) EmitTo(surface, event string) {
	ctx := context.Background()
	payload, err := json.Marshal(Event{Event: event, Target: surface})
	if err != nil {
		h.logger.Error(ctx, "Failed to encode event %s: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[surface] {
		if !c.trySend(payload) {
			h.metrics.EventDropped()
			h.logger.Warn(ctx, "Send buffer full, dropping %s for client %s", event, c.id)
		}
	}
}

// Clients returns the number of clients registered on surface.
func (h *Hub) Clients(surface string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[surface])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.surface] == nil {
		h.clients[c.surface] = make(map[*client]struct{})
	}
	h.clients[c.surface][c] = struct{}{}
	h.metrics.ClientConnected()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.surface][c]; !ok {
		return
	}
	delete(h.clients[c.surface], c)
	if len(h.clients[c.surface]) == 0 {
		delete(h.clients, c.surface)
	}
	h.metrics.ClientDisconnected()
}
