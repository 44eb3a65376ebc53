package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/foodworks/go-ordering-auth/internal/apperr"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps coded failures to their HTTP status. Anything without a
// code is an internal error and is logged rather than leaked.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "GEN-001",
			Message: "An unexpected error occurred",
		})
		return
	}
	writeJSON(w, statusFor(appErr), errorResponse{Code: appErr.Code, Message: appErr.Message})
}

func statusFor(appErr *apperr.Error) int {
	if errors.Is(appErr, apperr.ErrDuplicateContact) {
		return http.StatusConflict
	}

	category, _, _ := strings.Cut(appErr.Code, "-")
	switch category {
	case "ATH":
		return http.StatusUnauthorized
	case "ATHR":
		return http.StatusForbidden
	case "ANF":
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
