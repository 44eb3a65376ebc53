// Package auth orchestrates customer registration, credential checks, and
// the session lifecycle. It holds no mutable state of its own; everything
// durable lives behind the injected repositories.
package auth

import (
	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/sessions"
)

// Repos holds the storage dependencies shared by the authority services.
type Repos struct {
	Customers customers.Repo // Repository for customer identity records
	Sessions  sessions.Repo  // Repository for login sessions
}
