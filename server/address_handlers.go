package server

import (
	"encoding/json"
	"net/http"

	"github.com/foodworks/go-ordering-auth/addresses"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
)

type saveAddressRequest struct {
	FlatBuildingName string `json:"flat_building_name"`
	Locality         string `json:"locality"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	State            string `json:"state"`
}

type saveAddressResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type listAddressesResponse struct {
	Addresses []*addresses.Address `json:"addresses"`
}

type deleteAddressResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SaveAddressHandler stores a new address for the authenticated customer.
func (s *Server) SaveAddressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := customerFromContext(r)
		if !ok {
			writeError(w, apperr.ErrNotAuthenticated)
			return
		}

		var req saveAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.ErrAddressFieldsEmpty)
			return
		}

		address := &addresses.Address{
			FlatBuildingName: req.FlatBuildingName,
			Locality:         req.Locality,
			City:             req.City,
			Pincode:          req.Pincode,
			State:            req.State,
		}

		saved, err := s.addresses.Save(r.Context(), address, customer)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, saveAddressResponse{
			ID:     saved.UUID,
			Status: "ADDRESS SUCCESSFULLY REGISTERED",
		})
	}
}

// ListAddressesHandler returns every address the authenticated customer
// has saved.
func (s *Server) ListAddressesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := customerFromContext(r)
		if !ok {
			writeError(w, apperr.ErrNotAuthenticated)
			return
		}

		list, err := s.addresses.List(r.Context(), customer)
		if err != nil {
			writeError(w, err)
			return
		}
		if list == nil {
			list = []*addresses.Address{}
		}

		writeJSON(w, http.StatusOK, listAddressesResponse{Addresses: list})
	}
}

// DeleteAddressHandler removes one of the authenticated customer's
// addresses by its external identifier.
func (s *Server) DeleteAddressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := customerFromContext(r)
		if !ok {
			writeError(w, apperr.ErrNotAuthenticated)
			return
		}

		deleted, err := s.addresses.Delete(r.Context(), r.PathValue("address_uuid"), customer)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteAddressResponse{
			ID:     deleted.UUID,
			Status: "ADDRESS DELETED SUCCESSFULLY",
		})
	}
}
