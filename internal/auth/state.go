package auth

import (
	"sync"

	"github.com/gymms/portal/internal/models"
)

// Callback receives the signed-in user and their stored role claim, or
// (nil, guest) when no user is signed in.
type Callback func(user *models.User, role string)

// StateWatcher fans auth state changes out to registered callbacks for one
// client. Registering invokes the callback immediately with the current
// state, then again on every sign-in and sign-out.
type StateWatcher struct {
	mu        sync.Mutex
	callbacks []Callback
	current   *models.User
}

func NewStateWatcher() *StateWatcher {
	return &StateWatcher{}
}

// Watch registers a callback and delivers the current state to it.
func (w *StateWatcher) Watch(cb Callback) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, cb)
	user := w.current
	w.mu.Unlock()

	cb(user, roleOf(user))
}

// SignedIn records the user as the current identity and notifies watchers.
func (w *StateWatcher) SignedIn(user *models.User) {
	w.mu.Lock()
	w.current = user
	callbacks := append([]Callback(nil), w.callbacks...)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(user, roleOf(user))
	}
}

// SignedOut clears the current identity and notifies watchers.
func (w *StateWatcher) SignedOut() {
	w.mu.Lock()
	w.current = nil
	callbacks := append([]Callback(nil), w.callbacks...)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(nil, models.UserRoleGuest)
	}
}

func roleOf(user *models.User) string {
	if user == nil {
		return models.UserRoleGuest
	}
	return user.Role
}
