package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gymms/portal/internal/portal"
)

// clientHeader carries the portal client id on every request after
// registration.
const clientHeader = "X-Client-ID"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

// statusFor maps gateway and validation errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, portal.ErrMissingFields),
		errors.Is(err, portal.ErrInvalidEmail),
		errors.Is(err, portal.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, portal.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, portal.ErrMemberNotFound),
		errors.Is(err, portal.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, portal.ErrEmailInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// clientFrom resolves the portal client for the request, or writes the error
// response and returns false.
func clientFrom(hub *portal.Hub, w http.ResponseWriter, r *http.Request) (*portal.Client, bool) {
	id := r.Header.Get(clientHeader)
	if id == "" {
		http.Error(w, "missing "+clientHeader+" header", http.StatusBadRequest)
		return nil, false
	}
	client, ok := hub.Get(id)
	if !ok {
		http.Error(w, "unknown client", http.StatusNotFound)
		return nil, false
	}
	return client, true
}
