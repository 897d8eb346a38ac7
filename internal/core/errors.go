package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrModelUnavailable is returned by the suggestion engine when no backend
// is configured.
var ErrModelUnavailable = errors.New("suggestion backend not configured")

// ErrEntityFinalized is returned on attempts to edit trial-balance or
// schedule data after the entity has been finalized.
var ErrEntityFinalized = errors.New("entity is finalized: edits are rejected")

// ReferenceError reports a dangling parent reference found while building
// the chart of accounts. Loading fails fast; no per-query checks happen
// afterwards.
type ReferenceError struct {
	Code   string // the code carrying the bad reference
	Parent string // the parent code that does not exist
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("chart of accounts: %s references unknown parent %s", e.Code, e.Parent)
}

// InconsistentHierarchyError reports classification codes that do not form
// a valid chain in the chart of accounts.
type InconsistentHierarchyError struct {
	MajorHeadCode string
	MinorHeadCode string
	GroupingCode  string
	Reason        string
}

func (e *InconsistentHierarchyError) Error() string {
	return fmt.Sprintf("inconsistent hierarchy %s > %s > %s: %s",
		e.MajorHeadCode, e.MinorHeadCode, e.GroupingCode, e.Reason)
}

// UnbalancedTrialBalanceError reports a trial balance whose signed closing
// balances do not sum to zero within the import tolerance. It is a hard
// rejection: callers must not persist data that fails this check.
type UnbalancedTrialBalanceError struct {
	Difference decimal.Decimal
}

func (e *UnbalancedTrialBalanceError) Error() string {
	return fmt.Sprintf("trial balance does not tally: difference %s", e.Difference.StringFixed(2))
}

// MalformedSuggestionError reports backend output that could not be parsed
// into the suggestion schema even after repair.
type MalformedSuggestionError struct {
	Raw    string
	Reason string
}

func (e *MalformedSuggestionError) Error() string {
	return fmt.Sprintf("malformed suggestion: %s", e.Reason)
}

// SignPriorViolationError reports a suggested classification whose major
// head contradicts the ledger's balance sign.
type SignPriorViolationError struct {
	LedgerName    string
	Balance       decimal.Decimal
	MajorHeadCode string
}

func (e *SignPriorViolationError) Error() string {
	return fmt.Sprintf("suggestion for %q (balance %s) violates balance-sign prior with major head %s",
		e.LedgerName, e.Balance.StringFixed(2), e.MajorHeadCode)
}
