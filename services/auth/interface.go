package auth

import (
	"context"

	tokensRepo "aide/database/repository/tokens"
	"aide/models"

	"golang.org/x/oauth2"
)

type AuthService interface {
	// LoginURL returns the Google consent URL for a fresh login attempt.
	LoginURL(ctx context.Context) (string, error)
	// HandleCallback exchanges the OAuth code, persists the Google tokens
	// and returns a signed session token plus the authenticated user.
	HandleCallback(ctx context.Context, state, code string) (string, *models.SessionUser, error)
	// TokenSource returns a self-refreshing token source for a user's
	// Google APIs access. Refreshed tokens are written back to storage.
	TokenSource(ctx context.Context, email string) (oauth2.TokenSource, error)
	// Logout invalidates the cached session for the given session token.
	Logout(ctx context.Context, sessionToken string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Tokens tokensRepo.TokenRepository
}
