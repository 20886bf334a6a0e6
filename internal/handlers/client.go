package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gymms/portal/internal/auth"
	"github.com/gymms/portal/internal/portal"
)

// ClientHandler registers portal clients and serves their view snapshots.
type ClientHandler struct {
	hub *portal.Hub
}

func NewClientHandler(hub *portal.Hub) *ClientHandler {
	return &ClientHandler{hub: hub}
}

// Register handles POST /api/client. A returning client may present its
// previous id (to reattach its persisted session) and a session token (to
// resume admin state).
func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClientID string `json:"clientId"`
		Token    string `json:"token"`
	}
	if r.Body != nil {
		// An empty body registers a brand new client.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	client := h.hub.Register(r.Context(), body.ClientID)

	if body.Token != "" {
		if gateway, ok := client.Auth.(*auth.Gateway); ok {
			if err := gateway.Resume(r.Context(), body.Token); err != nil {
				slog.Warn("session resume failed", "clientId", client.ID, "error", err)
			}
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"clientId": client.ID,
		"view":     client.View.Snapshot(),
	})
}

// GetView handles GET /api/view.
func (h *ClientHandler) GetView(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, client.View.Snapshot())
}
