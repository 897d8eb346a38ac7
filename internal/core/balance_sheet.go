package core

import "github.com/shopspring/decimal"

// BalanceSheetSection is one grouped block of the balance sheet with its
// subtotal.
type BalanceSheetSection struct {
	Label string          `json:"label"`
	Lines []StatementLine `json:"lines"`
	Total StatementLine   `json:"total"`
}

func section(label string, lines ...StatementLine) BalanceSheetSection {
	cy, py := decimal.Zero, decimal.Zero
	for _, l := range lines {
		cy = cy.Add(l.CY)
		py = py.Add(l.PY)
	}
	return BalanceSheetSection{
		Label: label,
		Lines: lines,
		Total: StatementLine{Key: "total", Label: "Total", CY: cy, PY: py},
	}
}

// BalanceSheet is the derived Schedule III balance sheet. Amounts are
// presented positive on both sides.
type BalanceSheet struct {
	Equity                 BalanceSheetSection `json:"equity"`
	NonCurrentLiabilities  BalanceSheetSection `json:"nonCurrentLiabilities"`
	CurrentLiabilities     BalanceSheetSection `json:"currentLiabilities"`
	TotalEquityLiabilities StatementLine       `json:"totalEquityLiabilities"`

	NonCurrentAssets BalanceSheetSection `json:"nonCurrentAssets"`
	CurrentAssets    BalanceSheetSection `json:"currentAssets"`
	TotalAssets      StatementLine       `json:"totalAssets"`

	// ReconciliationDifference is assets less equity and liabilities.
	// It is reported as-is; a nonzero value surfaces through the rules
	// engine instead of being forced to zero here.
	ReconciliationDifference StatementLine `json:"reconciliationDifference"`
}

// DeriveBalanceSheet builds the balance sheet. Each line resolves a
// schedule total against the corresponding minor-head rollup, and the
// unappropriated current-year result folds into equity so both sides
// agree.
func DeriveBalanceSheet(snap *Snapshot, entity *Entity, pl *ProfitLoss) *BalanceSheet {
	sch := &entity.Schedules
	bs := &BalanceSheet{}

	// Equity. Company statements split capital from reserves; the other
	// constitutions present one owners' funds block.
	if entity.Type.IsCompany() {
		capCY, capPY := snap.Minor(MinorShareCapital, SignNonNegative)
		if sch.ShareCapital != nil {
			capCY = resolveLine(sch.ShareCapital.TotalCY(), capCY)
			capPY = resolveLine(sch.ShareCapital.TotalPY(), capPY)
		}
		resCY, resPY := snap.Minor(MinorReservesSurplus, SignNonNegative)
		if sch.OtherEquity != nil {
			resCY = resolveLine(sch.OtherEquity.TotalCY(), resCY)
			resPY = resolveLine(sch.OtherEquity.TotalPY(), resPY)
		}
		resCY = resCY.Add(pl.NetProfitTransferred.CY)
		resPY = resPY.Add(pl.NetProfitTransferred.PY)
		bs.Equity = section("Shareholders' Funds",
			line("share-capital", "Share Capital", "share-capital", capCY, capPY),
			line("reserves-surplus", "Reserves and Surplus", "other-equity", resCY, resPY),
		)
	} else {
		fundsCY, fundsPY := snap.Minor(MinorShareCapital, SignNonNegative)
		rCY, rPY := snap.Minor(MinorReservesSurplus, SignNonNegative)
		fundsCY = fundsCY.Add(rCY).Add(pl.NetProfitTransferred.CY)
		fundsPY = fundsPY.Add(rPY).Add(pl.NetProfitTransferred.PY)
		if sch.PartnersFunds != nil {
			// Partner closing balances already carry the profit share.
			fundsCY = resolveLine(sch.PartnersFunds.TotalCY(), fundsCY)
			fundsPY = resolveLine(sch.PartnersFunds.TotalPY(), fundsPY)
		}
		bs.Equity = section("Partners' / Owners' Funds",
			line("partners-funds", "Partners' / Owners' Capital", "partners-funds", fundsCY, fundsPY),
		)
	}

	ltbCY, ltbPY := snap.Minor(MinorLongTermBorrowings, SignNonNegative)
	if sch.Borrowings != nil {
		ltbCY = resolveLine(sch.Borrowings.LongTermCY(), ltbCY)
		ltbPY = resolveLine(sch.Borrowings.LongTermPY(), ltbPY)
	}
	dtlCY, dtlPY := snap.Minor(MinorDeferredTaxLiability, SignNonNegative)
	oltCY, oltPY := snap.Minor(MinorOtherLongTermLiab, SignNonNegative)
	ltpCY, ltpPY := snap.Minor(MinorLongTermProvisions, SignNonNegative)
	bs.NonCurrentLiabilities = section("Non-Current Liabilities",
		line("long-term-borrowings", "Long-Term Borrowings", "borrowings", ltbCY, ltbPY),
		line("deferred-tax-liabilities", "Deferred Tax Liabilities (Net)", "", dtlCY, dtlPY),
		line("other-long-term-liabilities", "Other Long-Term Liabilities", "", oltCY, oltPY),
		line("long-term-provisions", "Long-Term Provisions", "", ltpCY, ltpPY),
	)

	stbCY, stbPY := snap.Minor(MinorShortTermBorrowings, SignNonNegative)
	if sch.Borrowings != nil {
		stbCY = resolveLine(sch.Borrowings.ShortTermCY(), stbCY)
		stbPY = resolveLine(sch.Borrowings.ShortTermPY(), stbPY)
	}
	tpCY, tpPY := snap.Minor(MinorTradePayables, SignNonNegative)
	if sch.TradePayables != nil {
		tpCY = resolveLine(sch.TradePayables.TotalCY(), tpCY)
		tpPY = resolveLine(sch.TradePayables.TotalPY(), tpPY)
	}
	oclCY, oclPY := snap.Minor(MinorOtherCurrentLiab, SignNonNegative)
	stpCY, stpPY := snap.Minor(MinorShortTermProvisions, SignNonNegative)
	bs.CurrentLiabilities = section("Current Liabilities",
		line("short-term-borrowings", "Short-Term Borrowings", "borrowings", stbCY, stbPY),
		line("trade-payables", "Trade Payables", "trade-payables", tpCY, tpPY),
		line("other-current-liabilities", "Other Current Liabilities", "", oclCY, oclPY),
		line("short-term-provisions", "Short-Term Provisions", "", stpCY, stpPY),
	)

	bs.TotalEquityLiabilities = StatementLine{
		Key:   "total-equity-liabilities",
		Label: "Total Equity and Liabilities",
		CY:    bs.Equity.Total.CY.Add(bs.NonCurrentLiabilities.Total.CY).Add(bs.CurrentLiabilities.Total.CY),
		PY:    bs.Equity.Total.PY.Add(bs.NonCurrentLiabilities.Total.PY).Add(bs.CurrentLiabilities.Total.PY),
	}

	ppeCY, ppePY := snap.Minor(MinorPPE, SignNonNegative)
	if sch.PPE != nil {
		ppeCY = resolveLine(sch.PPE.NetBlockCY(), ppeCY)
		ppePY = resolveLine(sch.PPE.NetBlockPY(), ppePY)
	}
	cwipCY, cwipPY := snap.Minor(MinorCWIP, SignNonNegative)
	if sch.CWIP != nil {
		cwipCY = resolveLine(sch.CWIP.TotalCY(), cwipCY)
		cwipPY = resolveLine(sch.CWIP.TotalPY(), cwipPY)
	}
	intCY, intPY := snap.Minor(MinorIntangibles, SignNonNegative)
	if sch.Intangibles != nil {
		intCY = resolveLine(sch.Intangibles.NetBlockCY(), intCY)
		intPY = resolveLine(sch.Intangibles.NetBlockPY(), intPY)
	}
	iudCY, iudPY := snap.Minor(MinorIntangiblesUnderDev, SignNonNegative)
	nciCY, nciPY := snap.Minor(MinorNonCurrentInvest, SignNonNegative)
	ltlCY, ltlPY := snap.Minor(MinorLongTermLoans, SignNonNegative)
	dtaCY, dtaPY := snap.Minor(MinorDeferredTaxAssets, SignNonNegative)
	oncaCY, oncaPY := snap.Minor(MinorOtherNonCurrentAsset, SignNonNegative)
	bs.NonCurrentAssets = section("Non-Current Assets",
		line("ppe", "Property, Plant and Equipment", "ppe", ppeCY, ppePY),
		line("cwip", "Capital Work-in-Progress", "cwip", cwipCY, cwipPY),
		line("intangibles", "Intangible Assets", "intangibles", intCY, intPY),
		line("intangibles-under-dev", "Intangible Assets under Development", "", iudCY, iudPY),
		line("non-current-investments", "Non-Current Investments", "", nciCY, nciPY),
		line("long-term-loans-advances", "Long-Term Loans and Advances", "", ltlCY, ltlPY),
		line("deferred-tax-assets", "Deferred Tax Assets (Net)", "", dtaCY, dtaPY),
		line("other-non-current-assets", "Other Non-Current Assets", "", oncaCY, oncaPY),
	)

	ciCY, ciPY := snap.Minor(MinorCurrentInvestments, SignNonNegative)
	invCY, invPY := snap.Minor(MinorInventories, SignNonNegative)
	if sch.Inventories != nil {
		invCY = resolveLine(sch.Inventories.TotalCY(), invCY)
		invPY = resolveLine(sch.Inventories.TotalPY(), invPY)
	}
	trCY, trPY := snap.Minor(MinorTradeReceivables, SignNonNegative)
	if sch.TradeReceivables != nil {
		// The ageing schedule covers the current year only.
		trCY = resolveLine(sch.TradeReceivables.TotalCY(), trCY)
	}
	cashCY, cashPY := snap.Minor(MinorCashAndEquivalents, SignNonNegative)
	if sch.CashAndBank != nil {
		cashCY = resolveLine(sch.CashAndBank.TotalCY(), cashCY)
	}
	stlCY, stlPY := snap.Minor(MinorShortTermLoans, SignNonNegative)
	ocaCY, ocaPY := snap.Minor(MinorOtherCurrentAssets, SignNonNegative)
	bs.CurrentAssets = section("Current Assets",
		line("current-investments", "Current Investments", "", ciCY, ciPY),
		line("inventories", "Inventories", "inventories", invCY, invPY),
		line("trade-receivables", "Trade Receivables", "trade-receivables", trCY, trPY),
		line("cash-equivalents", "Cash and Cash Equivalents", "cash-and-bank", cashCY, cashPY),
		line("short-term-loans-advances", "Short-Term Loans and Advances", "", stlCY, stlPY),
		line("other-current-assets", "Other Current Assets", "", ocaCY, ocaPY),
	)

	bs.TotalAssets = StatementLine{
		Key:   "total-assets",
		Label: "Total Assets",
		CY:    bs.NonCurrentAssets.Total.CY.Add(bs.CurrentAssets.Total.CY),
		PY:    bs.NonCurrentAssets.Total.PY.Add(bs.CurrentAssets.Total.PY),
	}
	bs.ReconciliationDifference = StatementLine{
		Key:   "reconciliation-difference",
		Label: "Difference (Assets less Equity and Liabilities)",
		CY:    bs.TotalAssets.CY.Sub(bs.TotalEquityLiabilities.CY),
		PY:    bs.TotalAssets.PY.Sub(bs.TotalEquityLiabilities.PY),
	}
	return bs
}
