package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
	"github.com/foodworks/go-ordering-auth/passwords"
)

// CredentialService handles customer registration, profile updates, and
// password changes. The plaintext password never reaches the repository:
// it is replaced by a salted digest before anything is persisted.
type CredentialService struct {
	repos Repos
}

// NewCredentialService initializes a CredentialService with its storage
// dependencies.
func NewCredentialService(repos Repos) (*CredentialService, error) {
	if repos.Customers == nil {
		return nil, errors.New("[NewCredentialService] Customers repo is required")
	}
	return &CredentialService{repos: repos}, nil
}

// Signup registers a new customer. The validation checks run in a fixed
// order; for a multiply-invalid candidate the first failing check wins,
// and callers depend on which one fires.
func (cs *CredentialService) Signup(ctx context.Context, candidate *customers.Customer, password string) (*customers.Customer, error) {
	_, err := cs.repos.Customers.GetByContactNumber(ctx, candidate.ContactNumber)
	if err == nil {
		return nil, apperr.ErrDuplicateContact
	}
	if !errors.Is(err, customers.ErrNotFound) {
		return nil, errors.Wrap(err, "[Signup] GetByContactNumber")
	}

	if !customers.ValidEmail(candidate.Email) {
		return nil, apperr.ErrInvalidEmail
	}

	if !customers.ValidContactNumber(candidate.ContactNumber) {
		return nil, apperr.ErrInvalidContact
	}

	if !customers.StrongPassword(password) {
		return nil, apperr.ErrWeakPassword
	}

	salt, err := passwords.GenerateSalt()
	if err != nil {
		return nil, errors.Wrap(err, "[Signup] GenerateSalt")
	}

	candidate.UUID = uuid.New().String()
	candidate.ID = candidate.UUID
	candidate.Salt = salt
	candidate.PasswordDigest = passwords.Encrypt(password, salt)

	if err := cs.repos.Customers.Create(ctx, candidate); err != nil {
		return nil, errors.Wrap(err, "[Signup] Customers.Create")
	}

	return candidate, nil
}

// UpdateProfile persists name changes for an authenticated customer.
func (cs *CredentialService) UpdateProfile(ctx context.Context, customer *customers.Customer) (*customers.Customer, error) {
	if customer.FirstName == "" {
		return nil, apperr.ErrFirstNameEmpty
	}

	if err := cs.repos.Customers.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "[UpdateProfile] Customers.Update")
	}
	return customer, nil
}

// ChangePassword verifies the old password, then stores a digest of the
// new one under a freshly rotated salt.
func (cs *CredentialService) ChangePassword(ctx context.Context, customer *customers.Customer, oldPassword, newPassword string) (*customers.Customer, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, apperr.ErrPasswordFieldsEmpty
	}

	if !customers.StrongPassword(newPassword) {
		return nil, apperr.ErrWeakNewPassword
	}

	if !passwords.Verify(oldPassword, customer.Salt, customer.PasswordDigest) {
		return nil, apperr.ErrWrongOldPassword
	}

	salt, err := passwords.GenerateSalt()
	if err != nil {
		return nil, errors.Wrap(err, "[ChangePassword] GenerateSalt")
	}

	customer.Salt = salt
	customer.PasswordDigest = passwords.Encrypt(newPassword, salt)

	if err := cs.repos.Customers.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "[ChangePassword] Customers.Update")
	}
	return customer, nil
}
