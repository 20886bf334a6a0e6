package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gymms/portal/internal/auth"
	"github.com/gymms/portal/internal/models"
	"github.com/gymms/portal/internal/portal"
)

// AuthHandler exposes the admin login/signup/logout flows and the member
// login lookup.
type AuthHandler struct {
	hub *portal.Hub
}

func NewAuthHandler(hub *portal.Hub) *AuthHandler {
	return &AuthHandler{hub: hub}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := client.Orchestrator.AdminLogin(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	respondWithToken(w, client, user, http.StatusOK)
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := client.Orchestrator.AdminSignup(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	respondWithToken(w, client, user, http.StatusCreated)
}

// respondWithToken returns the view snapshot along with a session token the
// client can present on its next registration.
func respondWithToken(w http.ResponseWriter, client *portal.Client, user *models.User, status int) {
	response := map[string]any{"view": client.View.Snapshot()}
	if gateway, ok := client.Auth.(*auth.Gateway); ok {
		token, err := gateway.Token(user)
		if err != nil {
			slog.Error("token issue failed", "email", user.Email, "error", err)
		} else {
			response["token"] = token
		}
	}
	writeJSON(w, status, response)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	client.Orchestrator.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// MemberLogin handles POST /api/member-login.
func (h *AuthHandler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var body struct {
		Name     string `json:"name"`
		MemberID string `json:"memberId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := client.Orchestrator.MemberLogin(r.Context(), body.Name, body.MemberID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client.View.Snapshot())
}
