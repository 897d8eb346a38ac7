package app

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntityRequest is the input for registering a reporting entity.
type CreateEntityRequest struct {
	Name    string
	Type    string // Company, LLP or NonCorporate
	PAN     string
	CIN     string
	FYStart time.Time
	FYEnd   time.Time
}

// TrialBalanceRow is one imported ledger row. Balances are signed:
// debits positive, credits negative.
type TrialBalanceRow struct {
	LedgerName string
	ClosingCY  decimal.Decimal
	ClosingPY  decimal.Decimal
}

// ImportTrialBalanceRequest replaces an entity's trial balance.
type ImportTrialBalanceRequest struct {
	EntityID string
	Rows     []TrialBalanceRow
}

// ClassifyLedgerRequest commits one ledger's classification chain.
type ClassifyLedgerRequest struct {
	EntityID      string
	LedgerID      string
	MajorHeadCode string
	MinorHeadCode string
	GroupingCode  string
}
