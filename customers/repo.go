package customers

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Repo when no customer matches the lookup.
var ErrNotFound = errors.New("customer not found")

// Repo defines the interface for customer storage operations.
type Repo interface {
	// Create persists a new customer.
	Create(ctx context.Context, customer *Customer) error

	// Update overwrites an existing customer record.
	Update(ctx context.Context, customer *Customer) error

	// GetByID retrieves a customer by storage key.
	GetByID(ctx context.Context, id string) (*Customer, error)

	// GetByContactNumber retrieves a customer by their unique contact number.
	GetByContactNumber(ctx context.Context, contactNumber string) (*Customer, error)
}
