package core

import "github.com/shopspring/decimal"

// SignificantRatioChange is the year-on-year movement, in percent, above
// which Schedule III requires an explanation for the change.
var SignificantRatioChange = decimal.NewFromInt(25)

// Ratio is one line of the analytical ratios note.
type Ratio struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	CY    decimal.Decimal `json:"cy"`
	PY    decimal.Decimal `json:"py"`
	// PercentChange is the relative movement of CY against PY.
	PercentChange decimal.Decimal `json:"percentChange"`
	// Significant marks movements beyond the disclosure threshold.
	Significant bool   `json:"significant"`
	Explanation string `json:"explanation,omitempty"`
	// ExplanationMissing blocks finalization: a significant movement has
	// no preparer note.
	ExplanationMissing bool `json:"explanationMissing"`
}

type RatioReport struct {
	Ratios []Ratio `json:"ratios"`
}

// HasBlockers reports whether any significant ratio movement still lacks
// an explanation.
func (r *RatioReport) HasBlockers() bool {
	for _, ra := range r.Ratios {
		if ra.ExplanationMissing {
			return true
		}
	}
	return false
}

func safeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Round(4)
}

// DeriveRatios computes the analytical ratios for both years from the
// derived statements. Prior-year ratios are recomputed from prior-year
// balances, not carried over.
func DeriveRatios(snap *Snapshot, entity *Entity, bs *BalanceSheet, pl *ProfitLoss) *RatioReport {
	caCY, caPY := bs.CurrentAssets.Total.CY, bs.CurrentAssets.Total.PY
	clCY, clPY := bs.CurrentLiabilities.Total.CY, bs.CurrentLiabilities.Total.PY
	eqCY, eqPY := bs.Equity.Total.CY, bs.Equity.Total.PY

	ltbCY, ltbPY := lineAmounts(bs.NonCurrentLiabilities.Lines, "long-term-borrowings")
	stbCY, stbPY := lineAmounts(bs.CurrentLiabilities.Lines, "short-term-borrowings")
	debtCY, debtPY := ltbCY.Add(stbCY), ltbPY.Add(stbPY)

	invCY, invPY := lineAmounts(bs.CurrentAssets.Lines, "inventories")
	trCY, trPY := lineAmounts(bs.CurrentAssets.Lines, "trade-receivables")
	tpCY, tpPY := lineAmounts(bs.CurrentLiabilities.Lines, "trade-payables")

	revCY, revPY := pl.RevenueFromOperations.CY, pl.RevenueFromOperations.PY
	patCY, patPY := pl.ProfitAfterTax.CY, pl.ProfitAfterTax.PY
	pbtCY, pbtPY := pl.ProfitBeforeTax.CY, pl.ProfitBeforeTax.PY
	finCY, finPY := lineAmounts(pl.Expenses, "finance-costs")
	depCY, depPY := lineAmounts(pl.Expenses, "depreciation")
	comCY, comPY := lineAmounts(pl.Expenses, "cost-of-materials")
	purCY, purPY := lineAmounts(pl.Expenses, "purchases-stock")

	// Debt falling due within the year, for debt service coverage.
	cmCY, cmPY := snap.Grouping("B.70.04", SignNonNegative)

	nciCY, nciPY := snap.Minor(MinorNonCurrentInvest, SignNonNegative)
	ciCY, ciPY := snap.Minor(MinorCurrentInvestments, SignNonNegative)
	investCY, investPY := nciCY.Add(ciCY), nciPY.Add(ciPY)
	invIncCY, invIncPY := investmentIncome(snap)

	pairs := []struct {
		key, label string
		cy, py     decimal.Decimal
	}{
		{"current-ratio", "Current Ratio", safeRatio(caCY, clCY), safeRatio(caPY, clPY)},
		{"debt-equity", "Debt-Equity Ratio", safeRatio(debtCY, eqCY), safeRatio(debtPY, eqPY)},
		{"debt-service-coverage", "Debt Service Coverage Ratio",
			safeRatio(patCY.Add(depCY).Add(finCY), finCY.Add(cmCY)),
			safeRatio(patPY.Add(depPY).Add(finPY), finPY.Add(cmPY))},
		{"return-on-equity", "Return on Equity", safeRatio(patCY, eqCY), safeRatio(patPY, eqPY)},
		{"inventory-turnover", "Inventory Turnover Ratio", safeRatio(revCY, invCY), safeRatio(revPY, invPY)},
		{"receivables-turnover", "Trade Receivables Turnover Ratio", safeRatio(revCY, trCY), safeRatio(revPY, trPY)},
		{"payables-turnover", "Trade Payables Turnover Ratio",
			safeRatio(comCY.Add(purCY), tpCY), safeRatio(comPY.Add(purPY), tpPY)},
		{"net-capital-turnover", "Net Capital Turnover Ratio",
			safeRatio(revCY, caCY.Sub(clCY)), safeRatio(revPY, caPY.Sub(clPY))},
		{"net-profit", "Net Profit Ratio", safeRatio(patCY, revCY), safeRatio(patPY, revPY)},
		{"return-on-capital-employed", "Return on Capital Employed",
			safeRatio(pbtCY.Add(finCY), eqCY.Add(debtCY)), safeRatio(pbtPY.Add(finPY), eqPY.Add(debtPY))},
		{"return-on-investment", "Return on Investment", safeRatio(invIncCY, investCY), safeRatio(invIncPY, investPY)},
	}

	explanations := make(map[string]string, len(entity.Schedules.RatioExplanations))
	for _, e := range entity.Schedules.RatioExplanations {
		explanations[e.RatioKey] = e.Explanation
	}

	report := &RatioReport{Ratios: make([]Ratio, 0, len(pairs))}
	for _, p := range pairs {
		r := Ratio{Key: p.key, Label: p.label, CY: p.cy, PY: p.py}
		if !p.py.IsZero() {
			r.PercentChange = p.cy.Sub(p.py).Div(p.py.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
			r.Significant = r.PercentChange.Abs().GreaterThan(SignificantRatioChange)
		} else if !p.cy.IsZero() {
			// A ratio appearing from nothing is a significant movement
			// with no meaningful percentage.
			r.Significant = true
		}
		r.Explanation = explanations[p.key]
		r.ExplanationMissing = r.Significant && r.Explanation == ""
		report.Ratios = append(report.Ratios, r)
	}
	return report
}

func lineAmounts(lines []StatementLine, key string) (cy, py decimal.Decimal) {
	for _, l := range lines {
		if l.Key == key {
			return l.CY, l.PY
		}
	}
	return decimal.Zero, decimal.Zero
}

// investmentIncome is interest, dividend and disposal gains out of other
// income.
func investmentIncome(snap *Snapshot) (cy, py decimal.Decimal) {
	for _, code := range []string{"C.20.01", "C.20.02", "C.20.03"} {
		c, p := snap.Grouping(code, SignNonNegative)
		cy = cy.Add(c)
		py = py.Add(p)
	}
	return cy, py
}
