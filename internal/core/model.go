package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntityType drives which statement variants are produced. Companies get
// Schedule III equity sections and EPS; the other constitutions get
// partners'/owners' funds instead.
type EntityType string

const (
	EntityCompany      EntityType = "Company"
	EntityLLP          EntityType = "LLP"
	EntityNonCorporate EntityType = "NonCorporate"
)

// IsCompany reports whether the entity prepares company-format statements.
func (t EntityType) IsCompany() bool { return t == EntityCompany }

// LedgerAttributes carries flags that refine where a classified ledger
// lands inside a statement, beyond what its grouping code says.
type LedgerAttributes struct {
	// RelatedParty marks balances that must be disclosed separately.
	RelatedParty bool `json:"relatedParty,omitempty"`
	// MSME marks payables owed to micro and small enterprises.
	MSME bool `json:"msme,omitempty"`
	// Secured distinguishes secured from unsecured borrowings.
	Secured bool `json:"secured,omitempty"`
}

// TrialBalanceItem is one ledger row of an imported trial balance. Closing
// balances follow the debit-positive, credit-negative convention: assets
// and expenses close positive, liabilities and income close negative.
type TrialBalanceItem struct {
	ID         string          `json:"id"`
	LedgerName string          `json:"ledgerName"`
	ClosingCY  decimal.Decimal `json:"closingCy"`
	ClosingPY  decimal.Decimal `json:"closingPy"`

	IsMapped      bool   `json:"isMapped"`
	MajorHeadCode string `json:"majorHeadCode,omitempty"`
	MinorHeadCode string `json:"minorHeadCode,omitempty"`
	GroupingCode  string `json:"groupingCode,omitempty"`

	// NoteLineItemID optionally pins the ledger to a specific note row
	// chosen by the preparer, overriding the grouping's default placement.
	NoteLineItemID string `json:"noteLineItemId,omitempty"`

	// Suggested* hold the last AI suggestion until the preparer commits
	// or discards it. They never feed statement derivation.
	SuggestedMajorHeadCode string  `json:"suggestedMajorHeadCode,omitempty"`
	SuggestedMinorHeadCode string  `json:"suggestedMinorHeadCode,omitempty"`
	SuggestedGroupingCode  string  `json:"suggestedGroupingCode,omitempty"`
	SuggestionConfidence   float64 `json:"suggestionConfidence,omitempty"`

	Attributes LedgerAttributes `json:"attributes,omitempty"`
}

// MappingSuggestion is a proposed classification for one ledger.
type MappingSuggestion struct {
	LedgerName    string  `json:"ledgerName"`
	MajorHeadCode string  `json:"majorHeadCode"`
	MinorHeadCode string  `json:"minorHeadCode"`
	GroupingCode  string  `json:"groupingCode"`
	Confidence    float64 `json:"confidence"`
	Rationale     string  `json:"rationale,omitempty"`
}

// ClassificationExample is a previously committed ledger mapping used as
// few-shot context for the suggestion engine.
type ClassificationExample struct {
	LedgerName    string `json:"name"`
	MajorHeadCode string `json:"majorHead"`
	MinorHeadCode string `json:"minorHead"`
	GroupingCode  string `json:"grouping"`
}

// NormalizeLedgerName collapses a ledger name to its dedupe key.
func NormalizeLedgerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Entity is a reporting entity together with its working data. The trial
// balance and schedules are stored as one document; derivation reads them
// together.
type Entity struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         EntityType         `json:"type"`
	PAN          string             `json:"pan,omitempty"`
	CIN          string             `json:"cin,omitempty"`
	FYStart      time.Time          `json:"fyStart"`
	FYEnd        time.Time          `json:"fyEnd"`
	TrialBalance []TrialBalanceItem `json:"trialBalance"`
	Schedules    ScheduleData       `json:"schedules"`
	IsFinalized  bool               `json:"isFinalized"`
	IsDeleted    bool               `json:"isDeleted"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
