package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"finstat/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps service errors onto HTTP statuses. Unrecognized
// errors surface as 500 with the underlying message.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unbalanced *core.UnbalancedTrialBalanceError
		hierarchy  *core.InconsistentHierarchyError
		signPrior  *core.SignPriorViolationError
		malformed  *core.MalformedSuggestionError
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrEntityFinalized):
		writeError(w, r, err.Error(), "ENTITY_FINALIZED", http.StatusConflict)
	case errors.Is(err, core.ErrModelUnavailable):
		writeError(w, r, err.Error(), "MODEL_UNAVAILABLE", http.StatusServiceUnavailable)
	case errors.As(err, &unbalanced):
		writeError(w, r, err.Error(), "UNBALANCED_TRIAL_BALANCE", http.StatusUnprocessableEntity)
	case errors.As(err, &hierarchy):
		writeError(w, r, err.Error(), "INVALID_CLASSIFICATION", http.StatusUnprocessableEntity)
	case errors.As(err, &signPrior):
		writeError(w, r, err.Error(), "SIGN_PRIOR_VIOLATION", http.StatusUnprocessableEntity)
	case errors.As(err, &malformed):
		writeError(w, r, err.Error(), "MALFORMED_SUGGESTION", http.StatusBadGateway)
	default:
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
