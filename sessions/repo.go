package sessions

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Repo when no session matches the lookup.
var ErrNotFound = errors.New("session not found")

// Repo defines the interface for session storage operations. The store
// owns the session once created; the authority only reads it and performs
// the single logout mutation.
type Repo interface {
	// Create persists a new session.
	Create(ctx context.Context, session *Session) error

	// Update overwrites an existing session record.
	Update(ctx context.Context, session *Session) error

	// GetByAccessToken retrieves a session by its bearer token.
	GetByAccessToken(ctx context.Context, accessToken string) (*Session, error)
}
