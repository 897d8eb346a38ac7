package core

import "github.com/shopspring/decimal"

// BalanceTolerance is the absolute rounding slack allowed when checking
// that a trial balance nets to zero. Imports from spreadsheet exports
// routinely carry paise-level rounding noise.
var BalanceTolerance = decimal.NewFromInt(1)

// ValidateTrialBalance checks that the signed closing balances of the
// current year net to zero within BalanceTolerance. It returns
// *UnbalancedTrialBalanceError carrying the difference otherwise.
func ValidateTrialBalance(items []TrialBalanceItem) error {
	sum := decimal.Zero
	for i := range items {
		sum = sum.Add(items[i].ClosingCY)
	}
	if sum.Abs().GreaterThan(BalanceTolerance) {
		return &UnbalancedTrialBalanceError{Difference: sum}
	}
	return nil
}
