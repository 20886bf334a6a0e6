package portal

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Client bundles the per-client portal state: the orchestrator, its view and
// its auth gateway.
type Client struct {
	ID           string
	Orchestrator *Orchestrator
	View         *View
	Auth         AuthGateway
}

// Hub tracks connected portal clients by id. Each registered client gets its
// own orchestrator, view, auth gateway and session store from the factory.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	newClient func(id string) *Client
}

// NewHub returns a hub that builds clients with the given factory.
func NewHub(factory func(id string) *Client) *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		newClient: factory,
	}
}

// Register creates a client, starts its orchestrator (which restores any
// persisted session for the id) and returns it. A client re-presenting its
// id — the page-reload case — gets fresh state wired to the same session
// store; an empty id registers a brand new client.
func (h *Hub) Register(ctx context.Context, id string) *Client {
	if id == "" {
		id = uuid.NewString()
	}
	client := h.newClient(id)
	client.ID = id

	h.mu.Lock()
	h.clients[id] = client
	h.mu.Unlock()

	client.Orchestrator.Start(ctx)
	return client
}

// Get returns the client for the given id.
func (h *Hub) Get(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[id]
	return client, ok
}

// Remove forgets a client. Its persisted session, if any, is left intact so
// a later registration with the same store can restore it.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}
