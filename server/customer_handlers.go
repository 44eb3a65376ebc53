package server

import (
	"encoding/json"
	"net/http"

	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
)

type signupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

type signupResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type loginResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Message       string `json:"message"`
}

type logoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type updateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type customerUpdateResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Message   string `json:"message"`
}

// SignupHandler registers a new customer. The presence check runs at the
// boundary before the credential service's ordered validation.
func (s *Server) SignupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.ErrSignupFieldsEmpty)
			return
		}

		candidate := &customers.Customer{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
		}

		if !customers.SignupFieldsPresent(candidate, req.Password) {
			writeError(w, apperr.ErrSignupFieldsEmpty)
			return
		}

		customer, err := s.credentials.Signup(r.Context(), candidate, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, signupResponse{
			ID:     customer.UUID,
			Status: "CUSTOMER SUCCESSFULLY REGISTERED",
		})
	}
}

// LoginHandler authenticates Basic credentials and returns the minted
// access token in the access-token response header.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.gate.Login(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, err)
			return
		}

		customer, err := s.repos.Customers.GetByID(r.Context(), session.CustomerID)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("access-token", session.AccessToken)
		writeJSON(w, http.StatusOK, loginResponse{
			ID:            customer.UUID,
			FirstName:     customer.FirstName,
			LastName:      customer.LastName,
			Email:         customer.Email,
			ContactNumber: customer.ContactNumber,
			Message:       "LOGGED IN SUCCESSFULLY",
		})
	}
}

// LogoutHandler ends the bearer session.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.gate.Logout(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, err)
			return
		}

		customer, err := s.repos.Customers.GetByID(r.Context(), session.CustomerID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, logoutResponse{
			ID:      customer.UUID,
			Message: "LOGGED OUT SUCCESSFULLY",
		})
	}
}

// UpdateCustomerHandler updates the authenticated customer's name. An
// absent last name leaves the stored one untouched.
func (s *Server) UpdateCustomerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := customerFromContext(r)
		if !ok {
			writeError(w, apperr.ErrNotAuthenticated)
			return
		}

		var req updateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.ErrFirstNameEmpty)
			return
		}

		customer.FirstName = req.FirstName
		if req.LastName != "" {
			customer.LastName = req.LastName
		}

		updated, err := s.credentials.UpdateProfile(r.Context(), customer)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, customerUpdateResponse{
			ID:        updated.UUID,
			FirstName: updated.FirstName,
			LastName:  updated.LastName,
			Message:   "CUSTOMER DETAILS UPDATED SUCCESSFULLY",
		})
	}
}

// ChangePasswordHandler rotates the authenticated customer's password.
func (s *Server) ChangePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := customerFromContext(r)
		if !ok {
			writeError(w, apperr.ErrNotAuthenticated)
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.ErrPasswordFieldsEmpty)
			return
		}

		updated, err := s.credentials.ChangePassword(r.Context(), customer, req.OldPassword, req.NewPassword)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, customerUpdateResponse{
			ID:        updated.UUID,
			FirstName: updated.FirstName,
			LastName:  updated.LastName,
			Message:   "CUSTOMER PASSWORD UPDATED SUCCESSFULLY",
		})
	}
}
