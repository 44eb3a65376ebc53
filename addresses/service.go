package addresses

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
)

// Service validates and stores addresses on behalf of an authenticated
// customer.
type Service struct {
	repo Repo
}

// NewService initializes an address Service.
func NewService(repo Repo) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[NewService] address repo is required")
	}
	return &Service{repo: repo}, nil
}

// Save validates the address fields, binds the address to its owner, and
// persists it.
func (s *Service) Save(ctx context.Context, address *Address, owner *customers.Customer) (*Address, error) {
	if address.FlatBuildingName == "" ||
		address.Locality == "" ||
		address.City == "" ||
		address.Pincode == "" ||
		address.State == "" {
		return nil, apperr.ErrAddressFieldsEmpty
	}

	if !customers.ValidPincode(address.Pincode) {
		return nil, apperr.ErrInvalidPincode
	}

	address.UUID = uuid.New().String()
	address.ID = address.UUID
	address.CustomerID = owner.ID

	if err := s.repo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "[Service.Save] repo.Create")
	}
	return address, nil
}

// List returns all addresses saved by the owner.
func (s *Service) List(ctx context.Context, owner *customers.Customer) ([]*Address, error) {
	list, err := s.repo.ListByCustomer(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.List] repo.ListByCustomer")
	}
	return list, nil
}

// Get fetches an address by external identifier. Only the owner may see
// it.
func (s *Service) Get(ctx context.Context, addressUUID string, owner *customers.Customer) (*Address, error) {
	address, err := s.repo.GetByUUID(ctx, addressUUID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.ErrAddressNotFound
		}
		return nil, errors.Wrap(err, "[Service.Get] repo.GetByUUID")
	}

	if address.CustomerID != owner.ID {
		return nil, apperr.ErrForeignAddress
	}
	return address, nil
}

// Delete removes an address. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, addressUUID string, owner *customers.Customer) (*Address, error) {
	address, err := s.Get(ctx, addressUUID, owner)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, address.UUID); err != nil {
		return nil, errors.Wrap(err, "[Service.Delete] repo.Delete")
	}
	return address, nil
}
