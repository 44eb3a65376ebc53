package server

import (
	"context"
	"net/http"

	"github.com/foodworks/go-ordering-auth/customers"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyCustomer stores the authenticated customer
const ContextKeyCustomer ContextKey = "customer"

// RequireAuth is middleware that validates the Bearer token in the
// Authorization header through the authorization gate and injects the
// authenticated customer into the request context.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			customer, err := s.gate.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCustomer, customer)
			next(w, r.WithContext(ctx))
		}
	}
}

// customerFromContext returns the customer injected by RequireAuth.
func customerFromContext(r *http.Request) (*customers.Customer, bool) {
	customer, ok := r.Context().Value(ContextKeyCustomer).(*customers.Customer)
	return customer, ok
}
