package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gymms/portal/internal/portal"
)

// MemberHandler exposes the admin member/bill CRUD flows. Every mutation
// goes through the orchestrator so the dashboard reloads and the view stays
// authoritative.
type MemberHandler struct {
	hub *portal.Hub
}

func NewMemberHandler(hub *portal.Hub) *MemberHandler {
	return &MemberHandler{hub: hub}
}

// List handles GET /api/members?sort=name&dir=asc.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	if err := client.Orchestrator.SetSort(r.Context(), query.Get("sort"), query.Get("dir")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client.View.Snapshot().Members)
}

// Create handles POST /api/member.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var form portal.MemberForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := client.Orchestrator.SaveMember(r.Context(), "", form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client.View.Snapshot())
}

// Update handles PATCH /api/member/{memberID}.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var form portal.MemberForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["memberID"]
	if err := client.Orchestrator.SaveMember(r.Context(), id, form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client.View.Snapshot())
}

// Delete handles DELETE /api/member/{memberID}.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	if err := client.Orchestrator.DeleteMember(r.Context(), mux.Vars(r)["memberID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBill handles POST /api/bill.
func (h *MemberHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var form portal.BillForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := client.Orchestrator.AddBill(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client.View.Snapshot())
}
