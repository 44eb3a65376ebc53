// Package sessions models one authenticated login lifetime, bounded by
// issuance, a fixed expiry, or an explicit logout.
package sessions

import "time"

// Session represents one authenticated login for a customer.
// A session is created Active, and ends either by logout (LoggedOutAt is
// set, exactly once, never cleared) or by passing ExpiresAt. There is no
// way back to Active; a new login always creates a new session.
type Session struct {
	ID          string     `json:"id"`            // Storage key
	UUID        string     `json:"uuid"`          // Stable external identifier
	CustomerID  string     `json:"customer_id"`   // Owning customer
	AccessToken string     `json:"access_token"`  // Opaque bearer token
	IssuedAt    time.Time  `json:"issued_at"`     // When the session was created
	ExpiresAt   time.Time  `json:"expires_at"`    // IssuedAt plus the fixed validity
	LoggedOutAt *time.Time `json:"logged_out_at"` // Set on logout, nil while active
}

// LoggedOut reports whether the session was explicitly ended.
func (s *Session) LoggedOut() bool {
	return s.LoggedOutAt != nil
}

// Expired reports whether the session's validity window has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
