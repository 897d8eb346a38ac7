package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

// Finding is one review point raised by the pre-finalization checks.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// LedgerID points at the offending trial balance row when the
	// finding is ledger-specific.
	LedgerID string `json:"ledgerId,omitempty"`
}

// currentMaturityKeywords flag long-term borrowing ledgers whose names
// suggest the balance is actually repayable within twelve months.
var currentMaturityKeywords = []string{
	"current maturity", "current maturities", "curr maturity", "cm of",
}

var depreciationKeywords = []string{
	"depreciation", "amortisation", "amortization",
}

// CheckStatements runs the pre-finalization review rules over a classified
// trial balance and its schedules. Findings come back in rule order;
// Critical findings block finalization.
func CheckStatements(chart *Chart, entity *Entity) []Finding {
	var findings []Finding

	// Unmapped ledgers and dangling classification codes.
	for i := range entity.TrialBalance {
		item := &entity.TrialBalance[i]
		if !item.IsMapped {
			if item.ClosingCY.IsZero() && item.ClosingPY.IsZero() {
				continue
			}
			findings = append(findings, Finding{
				Rule:     "unmapped-ledger",
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("ledger %q has a balance but no classification", item.LedgerName),
				LedgerID: item.ID,
			})
			continue
		}
		if err := chart.ValidateChain(item.MajorHeadCode, item.MinorHeadCode, item.GroupingCode); err != nil {
			findings = append(findings, Finding{
				Rule:     "invalid-classification",
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("ledger %q: %v", item.LedgerName, err),
				LedgerID: item.ID,
			})
		}
	}

	// Balance sheet equation, with the unappropriated current-year result
	// treated as part of equity.
	sum := decimal.Zero
	for i := range entity.TrialBalance {
		sum = sum.Add(entity.TrialBalance[i].ClosingCY)
	}
	if sum.Abs().GreaterThan(BalanceTolerance) {
		findings = append(findings, Finding{
			Rule:     "balance-sheet-equation",
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("assets and liabilities differ by %s after folding in the current year result", sum.StringFixed(2)),
		})
	}

	// MSME disclosure: payables on the books but no MSME split entered.
	payables := minorRollup(entity.TrialBalance, MinorTradePayables)
	if !payables.IsZero() {
		tp := entity.Schedules.TradePayables
		if tp == nil || (tp.MSMECY.IsZero() && tp.OthersCY.IsZero()) {
			findings = append(findings, Finding{
				Rule:     "msme-disclosure",
				Severity: SeverityHigh,
				Message:  "trade payables exist but the MSME / others split has not been entered",
			})
		}
	}

	// Receivables ageing table.
	receivables := minorRollup(entity.TrialBalance, MinorTradeReceivables)
	if !receivables.IsZero() {
		tr := entity.Schedules.TradeReceivables
		if tr == nil || len(tr.UndisputedGood) == 0 {
			findings = append(findings, Finding{
				Rule:     "receivables-ageing",
				Severity: SeverityHigh,
				Message:  "trade receivables exist but the ageing schedule has not been entered",
			})
		}
	}

	// Name-based misclassification heuristics.
	for i := range entity.TrialBalance {
		item := &entity.TrialBalance[i]
		if !item.IsMapped {
			continue
		}
		name := strings.ToLower(item.LedgerName)
		if item.MinorHeadCode == MinorLongTermBorrowings && containsAny(name, currentMaturityKeywords) {
			findings = append(findings, Finding{
				Rule:     "current-maturity-placement",
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("ledger %q looks like a current maturity of long-term debt but sits under long-term borrowings", item.LedgerName),
				LedgerID: item.ID,
			})
		}
		if item.MinorHeadCode == MinorOtherExpenses && containsAny(name, depreciationKeywords) {
			findings = append(findings, Finding{
				Rule:     "depreciation-placement",
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("ledger %q looks like depreciation but sits under other expenses", item.LedgerName),
				LedgerID: item.ID,
			})
		}
	}

	return findings
}

// HasBlocking reports whether any finding is severe enough to block
// finalization.
func HasBlocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
