package addresses

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	mu        sync.RWMutex
	addresses map[string]*Address // uuid -> address
}

// NewInMemoryRepo creates a new in-memory address repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		addresses: make(map[string]*Address),
	}
}

func (r *InMemoryRepo) Create(ctx context.Context, address *Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == "" {
		address.ID = uuid.New().String()
	}

	stored := *address
	r.addresses[stored.UUID] = &stored
	return nil
}

func (r *InMemoryRepo) GetByUUID(ctx context.Context, addressUUID string) (*Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.addresses[addressUUID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *address
	return &found, nil
}

func (r *InMemoryRepo) ListByCustomer(ctx context.Context, customerID string) ([]*Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Address, 0)
	for _, address := range r.addresses {
		if address.CustomerID != customerID {
			continue
		}
		found := *address
		list = append(list, &found)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].UUID < list[j].UUID
	})

	return list, nil
}

func (r *InMemoryRepo) Delete(ctx context.Context, addressUUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.addresses[addressUUID]; !ok {
		return ErrNotFound
	}
	delete(r.addresses, addressUUID)
	return nil
}
