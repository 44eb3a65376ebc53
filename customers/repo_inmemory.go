package customers

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	mu         sync.RWMutex
	customers  map[string]*Customer
	contactIDs map[string]string // contact number -> storage key
}

// NewInMemoryRepo creates a new in-memory customer repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		customers:  make(map[string]*Customer),
		contactIDs: make(map[string]string),
	}
}

func (r *InMemoryRepo) Create(ctx context.Context, customer *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	// Copy to avoid external modifications
	stored := *customer
	r.customers[stored.ID] = &stored
	r.contactIDs[stored.ContactNumber] = stored.ID
	return nil
}

func (r *InMemoryRepo) Update(ctx context.Context, customer *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.ID]; !ok {
		return ErrNotFound
	}

	stored := *customer
	r.customers[stored.ID] = &stored
	r.contactIDs[stored.ContactNumber] = stored.ID
	return nil
}

func (r *InMemoryRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *customer
	return &found, nil
}

func (r *InMemoryRepo) GetByContactNumber(ctx context.Context, contactNumber string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.contactIDs[contactNumber]
	if !ok {
		return nil, ErrNotFound
	}
	found := *r.customers[id]
	return &found, nil
}
