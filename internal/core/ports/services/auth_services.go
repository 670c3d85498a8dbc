package services

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues the application's access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the account's ID
	// and role, returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, tenant *domain.Tenant) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google sign-in flow: code
// exchange and ID-token validation.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth redirect.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the Google consent URL for the state.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies an ID token's signature and audience
	// and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
