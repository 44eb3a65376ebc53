package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
	"github.com/foodworks/go-ordering-auth/passwords"
	"github.com/foodworks/go-ordering-auth/sessions"
	"github.com/foodworks/go-ordering-auth/token"
)

// sessionValidity is the fixed lifetime of every session.
const sessionValidity = 8 * time.Hour

// SessionService implements the session state machine: login creates an
// Active session, logout moves it to its terminal LoggedOut state, and
// expiry is derived from the clock rather than stored. Resolve walks the
// same checks in the same order for every protected request.
type SessionService struct {
	repos   Repos
	codec   *token.Codec
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// SessionServiceOption defines a function type to modify the
// SessionService instance.
type SessionServiceOption func(*SessionService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) SessionServiceOption {
	return func(ss *SessionService) {
		ss.nowTime = nowFunc
	}
}

// NewSessionService initializes a SessionService with required
// dependencies. Optional configuration can be provided via options.
func NewSessionService(repos Repos, codec *token.Codec, options ...SessionServiceOption) (*SessionService, error) {
	if repos.Customers == nil {
		return nil, errors.New("[NewSessionService] Customers repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewSessionService] Sessions repo is required")
	}
	if codec == nil {
		return nil, errors.New("[NewSessionService] token codec is required")
	}

	service := &SessionService{
		repos:   repos,
		codec:   codec,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Login checks the credentials and mints a new session. Two concurrent
// logins for the same customer both succeed and coexist independently.
func (ss *SessionService) Login(ctx context.Context, contactNumber, password string) (*sessions.Session, error) {
	customer, err := ss.repos.Customers.GetByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			return nil, apperr.ErrUnknownContact
		}
		return nil, errors.Wrap(err, "[Login] GetByContactNumber")
	}

	if !passwords.Verify(password, customer.Salt, customer.PasswordDigest) {
		return nil, apperr.ErrBadCredentials
	}

	now := ss.nowTime()
	expiresAt := now.Add(sessionValidity)

	accessToken, err := ss.codec.Encode(customer.UUID, now, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "[Login] codec.Encode")
	}

	session := &sessions.Session{
		UUID:        uuid.New().String(),
		CustomerID:  customer.ID,
		AccessToken: accessToken,
		IssuedAt:    now,
		ExpiresAt:   expiresAt,
	}
	session.ID = session.UUID

	if err := ss.repos.Sessions.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "[Login] Sessions.Create")
	}

	return session, nil
}

// Resolve validates a bearer token and returns the authenticated
// customer. The check order is a contract: unknown token, then logged
// out, then expired - a logged-out-then-expired session reports logout.
func (ss *SessionService) Resolve(ctx context.Context, accessToken string) (*customers.Customer, error) {
	session, err := ss.activeSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	customer, err := ss.repos.Customers.GetByID(ctx, session.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "[Resolve] Customers.GetByID")
	}
	return customer, nil
}

// Logout ends the session identified by the bearer token. The same three
// checks as Resolve run first, so logging out twice reports the logout
// rather than silently succeeding.
func (ss *SessionService) Logout(ctx context.Context, accessToken string) (*sessions.Session, error) {
	session, err := ss.activeSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	now := ss.nowTime()
	session.LoggedOutAt = &now

	if err := ss.repos.Sessions.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "[Logout] Sessions.Update")
	}
	return session, nil
}

// activeSession verifies the token signature, fetches the session, and
// applies the ordered lifecycle checks. A token that fails verification
// is indistinguishable from one that was never issued.
func (ss *SessionService) activeSession(ctx context.Context, accessToken string) (*sessions.Session, error) {
	if _, err := ss.codec.Decode(accessToken); err != nil {
		return nil, apperr.ErrNotAuthenticated
	}

	session, err := ss.repos.Sessions.GetByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, apperr.ErrNotAuthenticated
		}
		return nil, errors.Wrap(err, "[activeSession] GetByAccessToken")
	}

	if session.LoggedOut() {
		return nil, apperr.ErrAlreadyLoggedOut
	}

	if session.Expired(ss.nowTime()) {
		return nil, apperr.ErrSessionExpired
	}

	return session, nil
}
