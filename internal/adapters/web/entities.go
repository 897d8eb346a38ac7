package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"finstat/internal/app"
	"finstat/internal/core"
)

// ── Entity lifecycle ──────────────────────────────────────────────────────

type createEntityPayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	PAN     string `json:"pan"`
	CIN     string `json:"cin"`
	FYStart string `json:"fyStart"` // YYYY-MM-DD
	FYEnd   string `json:"fyEnd"`
}

func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	var payload createEntityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	fyStart, err := time.Parse("2006-01-02", payload.FYStart)
	if err != nil {
		writeError(w, r, "fyStart must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	fyEnd, err := time.Parse("2006-01-02", payload.FYEnd)
	if err != nil {
		writeError(w, r, "fyEnd must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateEntity(r.Context(), app.CreateEntityRequest{
		Name:    payload.Name,
		Type:    payload.Type,
		PAN:     payload.PAN,
		CIN:     payload.CIN,
		FYStart: fyStart,
		FYEnd:   fyEnd,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(result.Entity)
}

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListEntities(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if result.Entities == nil {
		result.Entities = []core.Entity{}
	}
	writeJSON(w, result.Entities)
}

func (h *Handler) getEntity(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetEntity(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Entity)
}

func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEntity(r.Context(), chi.URLParam(r, "entityID")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Trial balance and schedules ───────────────────────────────────────────

type trialBalanceRowPayload struct {
	LedgerName string          `json:"ledgerName"`
	ClosingCY  decimal.Decimal `json:"closingCy"`
	ClosingPY  decimal.Decimal `json:"closingPy"`
}

func (h *Handler) importTrialBalance(w http.ResponseWriter, r *http.Request) {
	var rows []trialBalanceRowPayload
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	req := app.ImportTrialBalanceRequest{EntityID: chi.URLParam(r, "entityID")}
	for _, row := range rows {
		req.Rows = append(req.Rows, app.TrialBalanceRow{
			LedgerName: row.LedgerName,
			ClosingCY:  row.ClosingCY,
			ClosingPY:  row.ClosingPY,
		})
	}
	result, err := h.svc.ImportTrialBalance(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Entity)
}

func (h *Handler) saveSchedules(w http.ResponseWriter, r *http.Request) {
	var schedules core.ScheduleData
	if err := json.NewDecoder(r.Body).Decode(&schedules); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.SaveSchedules(r.Context(), chi.URLParam(r, "entityID"), schedules)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Entity)
}

// ── Classification ────────────────────────────────────────────────────────

type classifyPayload struct {
	MajorHeadCode string `json:"majorHeadCode"`
	MinorHeadCode string `json:"minorHeadCode"`
	GroupingCode  string `json:"groupingCode"`
}

func (h *Handler) classifyLedger(w http.ResponseWriter, r *http.Request) {
	var payload classifyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.ClassifyLedger(r.Context(), app.ClassifyLedgerRequest{
		EntityID:      chi.URLParam(r, "entityID"),
		LedgerID:      chi.URLParam(r, "ledgerID"),
		MajorHeadCode: payload.MajorHeadCode,
		MinorHeadCode: payload.MinorHeadCode,
		GroupingCode:  payload.GroupingCode,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Entity)
}

func (h *Handler) suggestMapping(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SuggestMapping(r.Context(),
		chi.URLParam(r, "entityID"), chi.URLParam(r, "ledgerID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Suggestion)
}

func (h *Handler) suggestMappingBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SuggestMappingBatch(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	suggestions := result.Suggestions
	if suggestions == nil {
		suggestions = []core.MappingSuggestion{}
	}
	writeJSON(w, map[string]any{"suggestions": suggestions, "errors": result.Errors})
}

// ── Derivation ────────────────────────────────────────────────────────────

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Validate(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	findings := result.Findings
	if findings == nil {
		findings = []core.Finding{}
	}
	writeJSON(w, map[string]any{
		"findings": findings,
		"counts":   result.Counts,
		"blocking": result.Blocking,
	})
}

func (h *Handler) statements(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStatements(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Statements)
}

func (h *Handler) finalize(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Finalize(r.Context(), chi.URLParam(r, "entityID")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "finalized"})
}
