package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
	"github.com/foodworks/go-ordering-auth/sessions"
)

const (
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

// Gate is the single choke point every protected operation passes
// through. Collaborators hand it the raw Authorization header value and
// get back an authenticated customer or a specific rejection.
type Gate struct {
	sessions *SessionService
}

// NewGate creates a Gate over the session authority.
func NewGate(sessionService *SessionService) *Gate {
	return &Gate{sessions: sessionService}
}

// Authenticate extracts the bearer token from the header value and
// resolves it to a customer. A malformed header is a distinct failure
// from any session-lifecycle rejection.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (*customers.Customer, error) {
	accessToken, err := BearerToken(authorization)
	if err != nil {
		return nil, err
	}
	return g.sessions.Resolve(ctx, accessToken)
}

// Login decodes Basic credentials from the header value and performs the
// login.
func (g *Gate) Login(ctx context.Context, authorization string) (*sessions.Session, error) {
	contactNumber, password, err := BasicCredentials(authorization)
	if err != nil {
		return nil, err
	}
	return g.sessions.Login(ctx, contactNumber, password)
}

// Logout extracts the bearer token and ends its session.
func (g *Gate) Logout(ctx context.Context, authorization string) (*sessions.Session, error) {
	accessToken, err := BearerToken(authorization)
	if err != nil {
		return nil, err
	}
	return g.sessions.Logout(ctx, accessToken)
}

// BearerToken extracts the token from a "Bearer <token>" header value.
func BearerToken(authorization string) (string, error) {
	accessToken, found := strings.CutPrefix(authorization, bearerPrefix)
	if !found || accessToken == "" {
		return "", apperr.ErrMalformedHeader
	}
	return accessToken, nil
}

// BasicCredentials decodes a "Basic <base64(contactNumber:password)>"
// header value. A missing prefix, bad base64, or missing ":" separator
// all report the same malformed-header failure.
func BasicCredentials(authorization string) (contactNumber, password string, err error) {
	encoded, found := strings.CutPrefix(authorization, basicPrefix)
	if !found || encoded == "" {
		return "", "", apperr.ErrMalformedHeader
	}

	decoded, decodeErr := base64.StdEncoding.DecodeString(encoded)
	if decodeErr != nil {
		return "", "", apperr.ErrMalformedHeader
	}

	contactNumber, password, found = strings.Cut(string(decoded), ":")
	if !found {
		return "", "", apperr.ErrMalformedHeader
	}
	return contactNumber, password, nil
}
