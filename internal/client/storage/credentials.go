package storage

import (
	"context"

	"github.com/iudanet/shopadmin/pkg/api"
)

// CredentialStorage defines interface for storing session credentials on client.
// It is pure persistence: no network and no validation logic lives here.
// The store is the single source of truth for "is a session present".
type CredentialStorage interface {
	// SaveCredentials stores both tokens and the cached user descriptor
	// atomically. A partial credential (one token empty) is rejected.
	SaveCredentials(ctx context.Context, creds *Credentials, user *api.User) error

	// GetCredentials retrieves the stored token pair.
	// Returns ErrCredentialsNotFound unless both tokens are present.
	GetCredentials(ctx context.Context) (*Credentials, error)

	// GetCachedUser retrieves the cached user descriptor for synchronous
	// role-gated rendering. Returns ErrCredentialsNotFound when absent.
	GetCachedUser(ctx context.Context) (*api.User, error)

	// DeleteCredentials removes both tokens and the cached user.
	// Deleting an absent session is not an error (logout is idempotent).
	DeleteCredentials(ctx context.Context) error
}

// Credentials represents the bearer token pair of an authenticated session.
// Both tokens are opaque: the client never inspects their structure.
// Invariant: either both tokens are present or the session is absent.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
