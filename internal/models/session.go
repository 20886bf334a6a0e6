package models

// Session is the client-local record identifying a logged-in member. It is
// persisted by the portal session store so a returning client restores the
// member view without re-authenticating. Admin state is never persisted here.
type Session struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
