package core

import "github.com/shopspring/decimal"

// ProfitLoss is the derived Statement of Profit and Loss. All amounts are
// presented positive; the waterfall arithmetic handles direction.
type ProfitLoss struct {
	RevenueFromOperations StatementLine `json:"revenueFromOperations"`
	OtherIncome           StatementLine `json:"otherIncome"`
	TotalIncome           StatementLine `json:"totalIncome"`

	Expenses      []StatementLine `json:"expenses"`
	TotalExpenses StatementLine   `json:"totalExpenses"`

	ProfitBeforeExceptional StatementLine `json:"profitBeforeExceptional"`
	ExceptionalItems        StatementLine `json:"exceptionalItems"`
	ProfitBeforeTax         StatementLine `json:"profitBeforeTax"`
	CurrentTax              StatementLine `json:"currentTax"`
	DeferredTax             StatementLine `json:"deferredTax"`
	ProfitAfterTax          StatementLine `json:"profitAfterTax"`

	// PartnersRemuneration appropriates profit for LLPs and
	// non-corporate entities; nil for companies.
	PartnersRemuneration *StatementLine `json:"partnersRemuneration,omitempty"`
	// NetProfitTransferred is the residual carried to reserves or to the
	// partners' capital accounts.
	NetProfitTransferred StatementLine `json:"netProfitTransferred"`

	// EPS lines are produced for companies only.
	BasicEPS   *StatementLine `json:"basicEps,omitempty"`
	DilutedEPS *StatementLine `json:"dilutedEps,omitempty"`
}

func line(key, label, noteRef string, cy, py decimal.Decimal) StatementLine {
	return StatementLine{Key: key, Label: label, NoteRef: noteRef, CY: cy, PY: py}
}

// DeriveProfitLoss builds the income statement waterfall. Schedule totals
// win over trial balance rollups for the lines they cover.
func DeriveProfitLoss(snap *Snapshot, entity *Entity) *ProfitLoss {
	sch := &entity.Schedules
	pl := &ProfitLoss{}

	revCY, revPY := snap.Minor(MinorRevenueFromOps, SignNonNegative)
	pl.RevenueFromOperations = line("revenue", "Revenue from Operations", "revenue", revCY, revPY)

	oiCY, oiPY := snap.Minor(MinorOtherIncome, SignNonNegative)
	pl.OtherIncome = line("other-income", "Other Income", "other-income", oiCY, oiPY)

	pl.TotalIncome = line("total-income", "Total Income", "", revCY.Add(oiCY), revPY.Add(oiPY))

	comCY, comPY := snap.Minor(MinorCostOfMaterials, SignSigned)
	if sch.CostOfMaterials != nil {
		comCY = resolveLine(sch.CostOfMaterials.ConsumedCY(), comCY)
		comPY = resolveLine(sch.CostOfMaterials.ConsumedPY(), comPY)
	}

	purCY, purPY := snap.Minor(MinorPurchasesStock, SignSigned)

	chgCY, chgPY := snap.Minor(MinorChangesInventories, SignSigned)
	if sch.ChangesInventories != nil {
		chgCY = resolveLine(sch.ChangesInventories.ChangeCY(), chgCY)
		chgPY = resolveLine(sch.ChangesInventories.ChangePY(), chgPY)
	}

	empCY, empPY := snap.Minor(MinorEmployeeBenefits, SignSigned)
	if sch.EmployeeBenefits != nil {
		empCY = resolveLine(sch.EmployeeBenefits.TotalCY(), empCY)
	}

	finCY, finPY := snap.Minor(MinorFinanceCosts, SignSigned)

	depCY, depPY := snap.Minor(MinorDepreciation, SignSigned)
	depSchedule := decimal.Zero
	if sch.PPE != nil {
		depSchedule = depSchedule.Add(sch.PPE.DepreciationForYear())
	}
	if sch.Intangibles != nil {
		depSchedule = depSchedule.Add(sch.Intangibles.DepreciationForYear())
	}
	depCY = resolveLine(depSchedule, depCY)

	othCY, othPY := snap.Minor(MinorOtherExpenses, SignSigned)

	pl.Expenses = []StatementLine{
		line("cost-of-materials", "Cost of Materials Consumed", "cost-of-materials", comCY, comPY),
		line("purchases-stock", "Purchases of Stock-in-Trade", "purchases-stock", purCY, purPY),
		line("changes-inventories", "Changes in Inventories of Finished Goods, WIP and Stock-in-Trade", "changes-inventories", chgCY, chgPY),
		line("employee-benefits", "Employee Benefits Expense", "employee-benefits", empCY, empPY),
		line("finance-costs", "Finance Costs", "finance-costs", finCY, finPY),
		line("depreciation", "Depreciation and Amortisation Expense", "depreciation", depCY, depPY),
		line("other-expenses", "Other Expenses", "other-expenses", othCY, othPY),
	}

	totExpCY, totExpPY := decimal.Zero, decimal.Zero
	for _, e := range pl.Expenses {
		totExpCY = totExpCY.Add(e.CY)
		totExpPY = totExpPY.Add(e.PY)
	}
	pl.TotalExpenses = line("total-expenses", "Total Expenses", "", totExpCY, totExpPY)

	pbeCY := pl.TotalIncome.CY.Sub(totExpCY)
	pbePY := pl.TotalIncome.PY.Sub(totExpPY)
	pl.ProfitBeforeExceptional = line("profit-before-exceptional", "Profit Before Exceptional Items and Tax", "", pbeCY, pbePY)

	excCY, excPY := decimal.Zero, decimal.Zero
	if sch.ExceptionalItems != nil {
		excCY = sch.ExceptionalItems.TotalCY()
		excPY = sch.ExceptionalItems.TotalPY()
	}
	pl.ExceptionalItems = line("exceptional-items", "Exceptional Items", "exceptional-items", excCY, excPY)

	pbtCY := pbeCY.Sub(excCY)
	pbtPY := pbePY.Sub(excPY)
	pl.ProfitBeforeTax = line("profit-before-tax", "Profit Before Tax", "", pbtCY, pbtPY)

	curCY, curPY, defCY, defPY := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	if sch.TaxExpense != nil {
		curCY, curPY = sch.TaxExpense.CurrentTax, sch.TaxExpense.CurrentTaxPY
		defCY, defPY = sch.TaxExpense.DeferredTax, sch.TaxExpense.DeferredTaxPY
	}
	pl.CurrentTax = line("current-tax", "Current Tax", "tax", curCY, curPY)
	pl.DeferredTax = line("deferred-tax", "Deferred Tax", "tax", defCY, defPY)

	patCY := pbtCY.Sub(curCY).Sub(defCY)
	patPY := pbtPY.Sub(curPY).Sub(defPY)
	pl.ProfitAfterTax = line("profit-after-tax", "Profit After Tax", "", patCY, patPY)

	netCY, netPY := patCY, patPY
	if !entity.Type.IsCompany() {
		remCY := decimal.Zero
		if sch.PartnersFunds != nil {
			remCY = sch.PartnersFunds.TotalRemuneration()
		}
		rem := line("partners-remuneration", "Partners' Remuneration and Interest on Capital", "partners-funds", remCY, decimal.Zero)
		pl.PartnersRemuneration = &rem
		netCY = netCY.Sub(remCY)
	}
	transferLabel := "Balance Transferred to Reserves and Surplus"
	if !entity.Type.IsCompany() {
		transferLabel = "Net Profit Transferred to Partners' Capital Accounts"
	}
	pl.NetProfitTransferred = line("net-profit-transferred", transferLabel, "", netCY, netPY)

	if entity.Type.IsCompany() && sch.EPS != nil && sch.EPS.WeightedShares.IsPositive() {
		basic := line("basic-eps", "Basic Earnings per Share", "eps",
			patCY.Div(sch.EPS.WeightedShares).Round(2),
			epsOrZero(patPY, sch.EPS.WeightedSharesPY))
		pl.BasicEPS = &basic
		dilShares := sch.EPS.WeightedShares.Add(sch.EPS.DilutiveShares)
		dilSharesPY := sch.EPS.WeightedSharesPY.Add(sch.EPS.DilutiveSharesPY)
		diluted := line("diluted-eps", "Diluted Earnings per Share", "eps",
			epsOrZero(patCY, dilShares), epsOrZero(patPY, dilSharesPY))
		pl.DilutedEPS = &diluted
	}

	return pl
}

func epsOrZero(profit, shares decimal.Decimal) decimal.Decimal {
	if !shares.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(shares).Round(2)
}
