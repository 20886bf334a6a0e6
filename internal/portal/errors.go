package portal

import "errors"

// Gateway contract errors. Gateway implementations return these sentinels
// (possibly wrapped) so the orchestrator can map failures onto user-facing
// notifications without knowing the backing store.
var (
	// ErrMissingFields marks a form submitted with a required field empty.
	// It never causes a gateway round-trip.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrMemberNotFound is returned when a member lookup yields no match.
	ErrMemberNotFound = errors.New("no member found")

	// Auth failures, subtyped by provider-reported reason.
	ErrUserNotFound       = errors.New("email is not registered")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrEmailInUse         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
)
