package core

import "github.com/shopspring/decimal"

type CashFlowCategory string

const (
	CashFlowOperating CashFlowCategory = "OPERATING"
	CashFlowInvesting CashFlowCategory = "INVESTING"
	CashFlowFinancing CashFlowCategory = "FINANCING"
)

// CashFlowSection is one activity block with its subtotal.
type CashFlowSection struct {
	Category CashFlowCategory `json:"category"`
	Lines    []StatementLine  `json:"lines"`
	Total    StatementLine    `json:"total"`
}

// CashFlow is the derived cash flow statement, indirect method.
type CashFlow struct {
	Operating CashFlowSection `json:"operating"`
	Investing CashFlowSection `json:"investing"`
	Financing CashFlowSection `json:"financing"`

	NetIncrease StatementLine `json:"netIncrease"`
	OpeningCash StatementLine `json:"openingCash"`
	ClosingCash StatementLine `json:"closingCash"`

	// ReconciliationDifference is closing cash less opening cash less the
	// net increase. Non-zero values usually trace back to schedule totals
	// that diverge from the trial balance.
	ReconciliationDifference decimal.Decimal `json:"reconciliationDifference"`
}

// balanceChangeRule describes one working-capital or balance-movement
// line: the minor head whose year-on-year movement feeds the line, and
// which activity it belongs to. Asset movements invert (an increase
// consumes cash).
type balanceChangeRule struct {
	minorCode string
	key       string
	label     string
	category  CashFlowCategory
}

var cashFlowBalanceRules = []balanceChangeRule{
	{MinorInventories, "delta-inventories", "(Increase) / Decrease in Inventories", CashFlowOperating},
	{MinorTradeReceivables, "delta-receivables", "(Increase) / Decrease in Trade Receivables", CashFlowOperating},
	{MinorShortTermLoans, "delta-st-loans", "(Increase) / Decrease in Short-Term Loans and Advances", CashFlowOperating},
	{MinorOtherCurrentAssets, "delta-other-current-assets", "(Increase) / Decrease in Other Current Assets", CashFlowOperating},
	{MinorLongTermLoans, "delta-lt-loans", "(Increase) / Decrease in Long-Term Loans and Advances", CashFlowOperating},
	{MinorOtherNonCurrentAsset, "delta-other-nc-assets", "(Increase) / Decrease in Other Non-Current Assets", CashFlowOperating},
	{MinorTradePayables, "delta-payables", "Increase / (Decrease) in Trade Payables", CashFlowOperating},
	{MinorOtherCurrentLiab, "delta-other-current-liab", "Increase / (Decrease) in Other Current Liabilities", CashFlowOperating},
	{MinorShortTermProvisions, "delta-st-provisions", "Increase / (Decrease) in Short-Term Provisions", CashFlowOperating},
	{MinorLongTermProvisions, "delta-lt-provisions", "Increase / (Decrease) in Long-Term Provisions", CashFlowOperating},
	{MinorOtherLongTermLiab, "delta-other-lt-liab", "Increase / (Decrease) in Other Long-Term Liabilities", CashFlowOperating},
	{MinorDeferredTaxAssets, "delta-dta", "Movement in Deferred Tax Assets", CashFlowOperating},
	{MinorDeferredTaxLiability, "delta-dtl", "Movement in Deferred Tax Liabilities", CashFlowOperating},

	{MinorNonCurrentInvest, "delta-nc-investments", "(Purchase) / Sale of Non-Current Investments", CashFlowInvesting},
	{MinorCurrentInvestments, "delta-current-investments", "(Purchase) / Sale of Current Investments", CashFlowInvesting},

	{MinorLongTermBorrowings, "delta-lt-borrowings", "Proceeds / (Repayment) of Long-Term Borrowings", CashFlowFinancing},
	{MinorShortTermBorrowings, "delta-st-borrowings", "Proceeds / (Repayment) of Short-Term Borrowings", CashFlowFinancing},
}

// balanceMovement is the cash effect of a minor head's year-on-year
// change: liabilities and equity contribute their increase, assets
// contribute the negative of theirs.
func balanceMovement(snap *Snapshot, code string) decimal.Decimal {
	cy, py := snap.Minor(code, SignNonNegative)
	delta := cy.Sub(py)
	if side, ok := snap.chart.SideOf(code); ok && side == SideDebit {
		return delta.Neg()
	}
	return delta
}

// DeriveCashFlow builds the indirect-method cash flow statement for the
// current year. Prior-year columns stay zero: deriving them needs a third
// balance sheet date.
func DeriveCashFlow(snap *Snapshot, entity *Entity, pl *ProfitLoss) *CashFlow {
	cf := &CashFlow{}

	interestIncomeCY, _ := snap.Grouping("C.20.01", SignNonNegative)

	operating := []StatementLine{
		line("profit-before-tax", "Profit Before Tax", "", pl.ProfitBeforeTax.CY, decimal.Zero),
		line("add-depreciation", "Add: Depreciation and Amortisation", "", expenseLine(pl, "depreciation"), decimal.Zero),
		line("add-finance-costs", "Add: Finance Costs", "", expenseLine(pl, "finance-costs"), decimal.Zero),
		line("less-interest-income", "Less: Interest Income", "", interestIncomeCY.Neg(), decimal.Zero),
	}
	investing := []StatementLine{}
	financing := []StatementLine{}

	for _, r := range cashFlowBalanceRules {
		mv := balanceMovement(snap, r.minorCode)
		if mv.IsZero() {
			continue
		}
		l := line(r.key, r.label, "", mv, decimal.Zero)
		switch r.category {
		case CashFlowOperating:
			operating = append(operating, l)
		case CashFlowInvesting:
			investing = append(investing, l)
		case CashFlowFinancing:
			financing = append(financing, l)
		}
	}

	operating = append(operating,
		line("taxes-paid", "Less: Income Taxes Paid", "", pl.CurrentTax.CY.Neg(), decimal.Zero))

	// Fixed asset spend: the net block movement plus the depreciation
	// charged against it.
	fixedAssetDelta := decimal.Zero
	for _, code := range []string{MinorPPE, MinorCWIP, MinorIntangibles, MinorIntangiblesUnderDev} {
		cy, py := snap.Minor(code, SignNonNegative)
		fixedAssetDelta = fixedAssetDelta.Add(cy.Sub(py))
	}
	capex := fixedAssetDelta.Add(expenseLine(pl, "depreciation")).Neg()
	if !capex.IsZero() {
		investing = append([]StatementLine{
			line("capex", "Purchase of Property, Plant and Equipment (Net)", "", capex, decimal.Zero),
		}, investing...)
	}
	if !interestIncomeCY.IsZero() {
		investing = append(investing,
			line("interest-received", "Interest Received", "", interestIncomeCY, decimal.Zero))
	}

	// Capital movements net of the prior-year profit folded into the
	// balances: the transfer of last year's result to reserves or to the
	// capital accounts moves no cash.
	equityMovement := balanceMovement(snap, MinorShareCapital).
		Add(balanceMovement(snap, MinorReservesSurplus)).
		Sub(pl.NetProfitTransferred.PY)
	if !equityMovement.IsZero() {
		financing = append(financing,
			line("capital-movements", "Proceeds from Capital / Other Equity Movements", "", equityMovement, decimal.Zero))
	}
	financing = append(financing,
		line("finance-costs-paid", "Finance Costs Paid", "", expenseLine(pl, "finance-costs").Neg(), decimal.Zero))
	if pl.PartnersRemuneration != nil {
		financing = append(financing,
			line("partners-remuneration-paid", "Partners' Remuneration Paid", "", pl.PartnersRemuneration.CY.Neg(), decimal.Zero))
	}

	cf.Operating = cashFlowSection(CashFlowOperating, "Net Cash from Operating Activities", operating)
	cf.Investing = cashFlowSection(CashFlowInvesting, "Net Cash from Investing Activities", investing)
	cf.Financing = cashFlowSection(CashFlowFinancing, "Net Cash from Financing Activities", financing)

	net := cf.Operating.Total.CY.Add(cf.Investing.Total.CY).Add(cf.Financing.Total.CY)
	cf.NetIncrease = line("net-increase", "Net Increase / (Decrease) in Cash and Cash Equivalents", "", net, decimal.Zero)

	cashCY, cashPY := snap.Minor(MinorCashAndEquivalents, SignNonNegative)
	if entity.Schedules.CashAndBank != nil {
		cashCY = resolveLine(entity.Schedules.CashAndBank.TotalCY(), cashCY)
	}
	cf.OpeningCash = line("opening-cash", "Cash and Cash Equivalents at Beginning of Year", "", cashPY, decimal.Zero)
	cf.ClosingCash = line("closing-cash", "Cash and Cash Equivalents at End of Year", "", cashCY, decimal.Zero)
	cf.ReconciliationDifference = cashCY.Sub(cashPY).Sub(net)
	return cf
}

func cashFlowSection(cat CashFlowCategory, totalLabel string, lines []StatementLine) CashFlowSection {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.CY)
	}
	return CashFlowSection{
		Category: cat,
		Lines:    lines,
		Total:    line("total", totalLabel, "", total, decimal.Zero),
	}
}

func expenseLine(pl *ProfitLoss, key string) decimal.Decimal {
	for _, e := range pl.Expenses {
		if e.Key == key {
			return e.CY
		}
	}
	return decimal.Zero
}
