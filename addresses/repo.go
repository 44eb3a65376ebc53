package addresses

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Repo when no address matches the lookup.
var ErrNotFound = errors.New("address not found")

// Repo defines the interface for address storage operations.
type Repo interface {
	// Create persists a new address.
	Create(ctx context.Context, address *Address) error

	// GetByUUID retrieves an address by its external identifier.
	GetByUUID(ctx context.Context, uuid string) (*Address, error)

	// ListByCustomer retrieves all addresses owned by a customer.
	ListByCustomer(ctx context.Context, customerID string) ([]*Address, error)

	// Delete removes an address by its external identifier.
	Delete(ctx context.Context, uuid string) error
}
