package auth

import (
	"context"
	"fmt"

	"github.com/gymms/portal/internal/models"
	"github.com/gymms/portal/internal/services"
)

// Gateway is the per-client auth gateway: credential checks go to the shared
// user service, while sign-in state and its notifications are local to the
// client. It satisfies the portal's AuthGateway contract.
type Gateway struct {
	users   *services.UserService
	tokens  *JWTManager
	watcher *StateWatcher
}

// NewGateway builds a gateway for one client.
func NewGateway(users *services.UserService, tokens *JWTManager) *Gateway {
	return &Gateway{
		users:   users,
		tokens:  tokens,
		watcher: NewStateWatcher(),
	}
}

// Login verifies credentials and, on success, reports the sign-in to
// watchers.
func (g *Gateway) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := g.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.watcher.SignedIn(user)
	return user, nil
}

// Signup creates an account and signs the new user in.
func (g *Gateway) Signup(ctx context.Context, email, password string) (*models.User, error) {
	user, err := g.users.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.watcher.SignedIn(user)
	return user, nil
}

// Logout reports a sign-out to watchers. It never fails; there is nothing to
// revoke server-side for a stateless token.
func (g *Gateway) Logout(ctx context.Context) error {
	g.watcher.SignedOut()
	return nil
}

// WatchAuthState registers for sign-in/sign-out notifications.
func (g *Gateway) WatchAuthState(fn func(user *models.User, role string)) {
	g.watcher.Watch(Callback(fn))
}

// Token issues a session token for the signed-in user.
func (g *Gateway) Token(user *models.User) (string, error) {
	return g.tokens.Generate(user)
}

// Resume validates a token presented at client registration and restores its
// user as the signed-in identity. The account is re-read so a revoked or
// deleted user cannot resume, and the live role claim is used rather than
// the one baked into the token.
func (g *Gateway) Resume(ctx context.Context, tokenString string) error {
	claims, err := g.tokens.Validate(tokenString)
	if err != nil {
		return err
	}

	user, err := g.users.GetUser(ctx, claims.UserID)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	g.watcher.SignedIn(user)
	return nil
}
