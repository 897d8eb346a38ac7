package core

// Chart codes referenced throughout the derivation and suggestion engines.
// Codes are stable identifiers in major.minor.grouping dot notation, not
// display order.
const (
	MajorHeadAssets            = "A"
	MajorHeadEquityLiabilities = "B"
	MajorHeadProfitLoss        = "C"

	MinorPPE                  = "A.10"
	MinorCWIP                 = "A.20"
	MinorIntangibles          = "A.30"
	MinorIntangiblesUnderDev  = "A.40"
	MinorNonCurrentInvest     = "A.50"
	MinorLongTermLoans        = "A.60"
	MinorDeferredTaxAssets    = "A.70"
	MinorOtherNonCurrentAsset = "A.80"
	MinorCurrentInvestments   = "A.90"
	MinorInventories          = "A.100"
	MinorTradeReceivables     = "A.110"
	MinorCashAndEquivalents   = "A.120"
	MinorShortTermLoans       = "A.130"
	MinorOtherCurrentAssets   = "A.140"

	MinorShareCapital         = "B.10"
	MinorReservesSurplus      = "B.20"
	MinorLongTermBorrowings   = "B.30"
	MinorDeferredTaxLiability = "B.40"
	MinorOtherLongTermLiab    = "B.50"
	MinorLongTermProvisions   = "B.60"
	MinorShortTermBorrowings  = "B.70"
	MinorTradePayables        = "B.80"
	MinorOtherCurrentLiab     = "B.90"
	MinorShortTermProvisions  = "B.100"

	MinorRevenueFromOps     = "C.10"
	MinorOtherIncome        = "C.20"
	MinorCostOfMaterials    = "C.30"
	MinorPurchasesStock     = "C.40"
	MinorChangesInventories = "C.50"
	MinorEmployeeBenefits   = "C.60"
	MinorFinanceCosts       = "C.70"
	MinorDepreciation       = "C.80"
	MinorOtherExpenses      = "C.90"

	GroupingPayablesMSME   = "B.80.01"
	GroupingPayablesOthers = "B.80.02"
	GroupingPurchasesRM    = "C.30.02"
)

// DefaultMasters returns the built-in Schedule III chart of accounts. A
// tenant may load its own masters; statements and suggestions work against
// whatever chart the caller supplies.
func DefaultMasters() Masters {
	return Masters{
		MajorHeads: []MajorHead{
			{Code: "A", Name: "Assets"},
			{Code: "B", Name: "Equity and Liabilities"},
			{Code: "C", Name: "Profit & Loss Statement"},
		},
		MinorHeads: []MinorHead{
			{Code: "A.10", Name: "Property, Plant and Equipment", MajorHeadCode: "A"},
			{Code: "A.20", Name: "Capital Work-in-Progress", MajorHeadCode: "A"},
			{Code: "A.30", Name: "Intangible Assets", MajorHeadCode: "A"},
			{Code: "A.40", Name: "Intangible Assets under Development", MajorHeadCode: "A"},
			{Code: "A.50", Name: "Non-Current Investments", MajorHeadCode: "A"},
			{Code: "A.60", Name: "Long-Term Loans and Advances", MajorHeadCode: "A"},
			{Code: "A.70", Name: "Deferred Tax Assets", MajorHeadCode: "A"},
			{Code: "A.80", Name: "Other Non-Current Assets", MajorHeadCode: "A"},
			{Code: "A.90", Name: "Current Investments", MajorHeadCode: "A"},
			{Code: "A.100", Name: "Inventories", MajorHeadCode: "A"},
			{Code: "A.110", Name: "Trade Receivables", MajorHeadCode: "A"},
			{Code: "A.120", Name: "Cash and Cash Equivalents", MajorHeadCode: "A"},
			{Code: "A.130", Name: "Short-Term Loans and Advances", MajorHeadCode: "A"},
			{Code: "A.140", Name: "Other Current Assets", MajorHeadCode: "A"},
			{Code: "B.10", Name: "Share Capital", MajorHeadCode: "B"},
			{Code: "B.20", Name: "Reserves and Surplus", MajorHeadCode: "B"},
			{Code: "B.30", Name: "Long-Term Borrowings", MajorHeadCode: "B"},
			{Code: "B.40", Name: "Deferred Tax Liabilities", MajorHeadCode: "B"},
			{Code: "B.50", Name: "Other Long-Term Liabilities", MajorHeadCode: "B"},
			{Code: "B.60", Name: "Long-Term Provisions", MajorHeadCode: "B"},
			{Code: "B.70", Name: "Short-Term Borrowings", MajorHeadCode: "B"},
			{Code: "B.80", Name: "Trade Payables", MajorHeadCode: "B"},
			{Code: "B.90", Name: "Other Current Liabilities", MajorHeadCode: "B"},
			{Code: "B.100", Name: "Short-Term Provisions", MajorHeadCode: "B"},
			{Code: "C.10", Name: "Revenue from Operations", MajorHeadCode: "C"},
			{Code: "C.20", Name: "Other Income", MajorHeadCode: "C"},
			{Code: "C.30", Name: "Cost of Materials Consumed", MajorHeadCode: "C"},
			{Code: "C.40", Name: "Purchases of Stock-in-Trade", MajorHeadCode: "C"},
			{Code: "C.50", Name: "Changes in Inventories", MajorHeadCode: "C"},
			{Code: "C.60", Name: "Employee Benefits Expense", MajorHeadCode: "C"},
			{Code: "C.70", Name: "Finance Costs", MajorHeadCode: "C"},
			{Code: "C.80", Name: "Depreciation and Amortisation", MajorHeadCode: "C"},
			{Code: "C.90", Name: "Other Expenses", MajorHeadCode: "C"},
		},
		Groupings: []Grouping{
			{Code: "A.10.01", Name: "Land", MinorHeadCode: "A.10"},
			{Code: "A.10.02", Name: "Buildings", MinorHeadCode: "A.10"},
			{Code: "A.10.03", Name: "Plant & Machinery", MinorHeadCode: "A.10"},
			{Code: "A.10.04", Name: "Furniture & Fixtures", MinorHeadCode: "A.10"},
			{Code: "A.10.05", Name: "Vehicles", MinorHeadCode: "A.10"},
			{Code: "A.10.06", Name: "Office Equipment", MinorHeadCode: "A.10"},
			{Code: "A.10.07", Name: "Computers / IT Equipment", MinorHeadCode: "A.10"},
			{Code: "A.10.08", Name: "Electrical Installations", MinorHeadCode: "A.10"},
			{Code: "A.10.09", Name: "Leasehold Improvements", MinorHeadCode: "A.10"},
			{Code: "A.10.10", Name: "Assets under Finance Lease", MinorHeadCode: "A.10"},
			{Code: "A.10.11", Name: "Other PPE", MinorHeadCode: "A.10"},
			{Code: "A.20.01", Name: "Projects in Progress", MinorHeadCode: "A.20"},
			{Code: "A.20.02", Name: "Projects Temporarily Suspended", MinorHeadCode: "A.20"},
			{Code: "A.30.01", Name: "Goodwill", MinorHeadCode: "A.30"},
			{Code: "A.30.02", Name: "Computer Software", MinorHeadCode: "A.30"},
			{Code: "A.30.03", Name: "Brands / Trademarks", MinorHeadCode: "A.30"},
			{Code: "A.30.04", Name: "Licences & Franchises", MinorHeadCode: "A.30"},
			{Code: "A.30.05", Name: "Patents & Copyrights", MinorHeadCode: "A.30"},
			{Code: "A.30.06", Name: "Technical Know-how", MinorHeadCode: "A.30"},
			{Code: "A.30.07", Name: "Other Intangible Assets", MinorHeadCode: "A.30"},
			{Code: "A.40.01", Name: "Projects in Progress", MinorHeadCode: "A.40"},
			{Code: "A.40.02", Name: "Projects Temporarily Suspended", MinorHeadCode: "A.40"},
			{Code: "A.50.01", Name: "Equity Investments – Subsidiaries", MinorHeadCode: "A.50"},
			{Code: "A.50.02", Name: "Equity Investments – Associates", MinorHeadCode: "A.50"},
			{Code: "A.50.03", Name: "Equity Investments – Joint Ventures", MinorHeadCode: "A.50"},
			{Code: "A.50.04", Name: "Equity Investments – Others", MinorHeadCode: "A.50"},
			{Code: "A.50.05", Name: "Preference Shares", MinorHeadCode: "A.50"},
			{Code: "A.50.06", Name: "Debentures / Bonds", MinorHeadCode: "A.50"},
			{Code: "A.50.07", Name: "Mutual Funds", MinorHeadCode: "A.50"},
			{Code: "A.50.08", Name: "Government Securities", MinorHeadCode: "A.50"},
			{Code: "A.50.09", Name: "Investment Property", MinorHeadCode: "A.50"},
			{Code: "A.50.10", Name: "Partnership Firms", MinorHeadCode: "A.50"},
			{Code: "A.50.11", Name: "Other Non-current Investments", MinorHeadCode: "A.50"},
			{Code: "A.60.01", Name: "Capital Advances", MinorHeadCode: "A.60"},
			{Code: "A.60.02", Name: "Loans to Related Parties", MinorHeadCode: "A.60"},
			{Code: "A.60.03", Name: "Security Deposits", MinorHeadCode: "A.60"},
			{Code: "A.60.04", Name: "Other Long-term Advances", MinorHeadCode: "A.60"},
			{Code: "A.60.05", Name: "Advance Income-tax (LT portion)", MinorHeadCode: "A.60"},
			{Code: "A.70.01", Name: "Deferred Tax Asset – Timing Differences", MinorHeadCode: "A.70"},
			{Code: "A.80.01", Name: "Long-term Trade Receivables", MinorHeadCode: "A.80"},
			{Code: "A.80.02", Name: "Unamortised Expenses", MinorHeadCode: "A.80"},
			{Code: "A.80.03", Name: "Other Non-current Assets", MinorHeadCode: "A.80"},
			{Code: "A.90.01", Name: "Equity Mutual Funds", MinorHeadCode: "A.90"},
			{Code: "A.90.02", Name: "Debt Mutual Funds", MinorHeadCode: "A.90"},
			{Code: "A.90.03", Name: "Equity Shares", MinorHeadCode: "A.90"},
			{Code: "A.90.04", Name: "Preference Shares", MinorHeadCode: "A.90"},
			{Code: "A.90.05", Name: "Debentures / Bonds", MinorHeadCode: "A.90"},
			{Code: "A.90.06", Name: "Government Securities", MinorHeadCode: "A.90"},
			{Code: "A.90.07", Name: "Other Current Investments", MinorHeadCode: "A.90"},
			{Code: "A.100.01", Name: "Raw Materials", MinorHeadCode: "A.100"},
			{Code: "A.100.02", Name: "Work-in-Progress", MinorHeadCode: "A.100"},
			{Code: "A.100.03", Name: "Finished Goods", MinorHeadCode: "A.100"},
			{Code: "A.100.04", Name: "Stock-in-Trade", MinorHeadCode: "A.100"},
			{Code: "A.100.05", Name: "Stores & Spares", MinorHeadCode: "A.100"},
			{Code: "A.100.06", Name: "Loose Tools", MinorHeadCode: "A.100"},
			{Code: "A.100.07", Name: "Goods-in-Transit", MinorHeadCode: "A.100"},
			{Code: "A.100.08", Name: "Other Inventories", MinorHeadCode: "A.100"},
			{Code: "A.110.01", Name: "Trade Receivables – Domestic", MinorHeadCode: "A.110"},
			{Code: "A.110.02", Name: "Trade Receivables – Export", MinorHeadCode: "A.110"},
			{Code: "A.110.03", Name: "Unbilled Revenue", MinorHeadCode: "A.110"},
			{Code: "A.110.04", Name: "Retention Receivables", MinorHeadCode: "A.110"},
			{Code: "A.120.01", Name: "Cash on Hand", MinorHeadCode: "A.120"},
			{Code: "A.120.02", Name: "Balances with Scheduled Banks", MinorHeadCode: "A.120"},
			{Code: "A.120.03", Name: "Balances with Non-scheduled Banks", MinorHeadCode: "A.120"},
			{Code: "A.120.04", Name: "Fixed Deposits (≤12 months)", MinorHeadCode: "A.120"},
			{Code: "A.120.05", Name: "Earmarked Bank Balances", MinorHeadCode: "A.120"},
			{Code: "A.120.06", Name: "Margin Money", MinorHeadCode: "A.120"},
			{Code: "A.130.01", Name: "Advances to Suppliers", MinorHeadCode: "A.130"},
			{Code: "A.130.02", Name: "Advances to Employees", MinorHeadCode: "A.130"},
			{Code: "A.130.03", Name: "Loans to Related Parties", MinorHeadCode: "A.130"},
			{Code: "A.130.04", Name: "Prepaid Expenses", MinorHeadCode: "A.130"},
			{Code: "A.130.05", Name: "Advance Income-tax", MinorHeadCode: "A.130"},
			{Code: "A.130.06", Name: "Other Short-term Advances", MinorHeadCode: "A.130"},
			{Code: "A.140.01", Name: "GST Input Credit Receivable", MinorHeadCode: "A.140"},
			{Code: "A.140.02", Name: "Interest Accrued Receivable", MinorHeadCode: "A.140"},
			{Code: "A.140.03", Name: "Foreign Exchange Receivable", MinorHeadCode: "A.140"},
			{Code: "A.140.04", Name: "Other Current Assets", MinorHeadCode: "A.140"},
			{Code: "A.140.05", Name: "Balance with Govt. authorities", MinorHeadCode: "A.140"},
			{Code: "B.10.01", Name: "Equity Share Capital", MinorHeadCode: "B.10"},
			{Code: "B.10.02", Name: "Preference Share Capital", MinorHeadCode: "B.10"},
			{Code: "B.10.03", Name: "Partners' Capital Account", MinorHeadCode: "B.10"},
			{Code: "B.20.01", Name: "Capital Reserve", MinorHeadCode: "B.20"},
			{Code: "B.20.02", Name: "Securities Premium", MinorHeadCode: "B.20"},
			{Code: "B.20.03", Name: "Capital Redemption Reserve", MinorHeadCode: "B.20"},
			{Code: "B.20.04", Name: "Debenture Redemption Reserve", MinorHeadCode: "B.20"},
			{Code: "B.20.05", Name: "Revaluation Reserve", MinorHeadCode: "B.20"},
			{Code: "B.20.06", Name: "Share Options Outstanding", MinorHeadCode: "B.20"},
			{Code: "B.20.07", Name: "Retained Earnings / Surplus", MinorHeadCode: "B.20"},
			{Code: "B.30.01", Name: "Term Loans – Banks", MinorHeadCode: "B.30"},
			{Code: "B.30.02", Name: "Term Loans – Financial Institutions", MinorHeadCode: "B.30"},
			{Code: "B.30.03", Name: "Debentures / Bonds", MinorHeadCode: "B.30"},
			{Code: "B.30.04", Name: "Deposits", MinorHeadCode: "B.30"},
			{Code: "B.30.05", Name: "Loans from Related Parties", MinorHeadCode: "B.30"},
			{Code: "B.30.06", Name: "Finance Lease Obligations", MinorHeadCode: "B.30"},
			{Code: "B.40.01", Name: "Deferred Tax Liability – Timing Differences", MinorHeadCode: "B.40"},
			{Code: "B.50.01", Name: "Long-term Trade Payables", MinorHeadCode: "B.50"},
			{Code: "B.50.02", Name: "Security Deposits Received", MinorHeadCode: "B.50"},
			{Code: "B.50.03", Name: "Other Long-term Liabilities", MinorHeadCode: "B.50"},
			{Code: "B.60.01", Name: "Gratuity Provision", MinorHeadCode: "B.60"},
			{Code: "B.60.02", Name: "Leave Encashment Provision", MinorHeadCode: "B.60"},
			{Code: "B.60.03", Name: "Other Long-term Provisions", MinorHeadCode: "B.60"},
			{Code: "B.70.01", Name: "Cash Credit / Overdraft", MinorHeadCode: "B.70"},
			{Code: "B.70.02", Name: "Short-term Loans – Banks", MinorHeadCode: "B.70"},
			{Code: "B.70.03", Name: "Short-term Loans – Others", MinorHeadCode: "B.70"},
			{Code: "B.70.04", Name: "Current Maturity of Long-term Debt", MinorHeadCode: "B.70"},
			{Code: "B.70.05", Name: "Loans from Related Parties", MinorHeadCode: "B.70"},
			{Code: "B.80.01", Name: "Trade Payables – MSME", MinorHeadCode: "B.80"},
			{Code: "B.80.02", Name: "Trade Payables – Others", MinorHeadCode: "B.80"},
			{Code: "B.90.01", Name: "Statutory Dues Payable", MinorHeadCode: "B.90"},
			{Code: "B.90.02", Name: "Interest Accrued but not Due", MinorHeadCode: "B.90"},
			{Code: "B.90.03", Name: "Interest Accrued and Due", MinorHeadCode: "B.90"},
			{Code: "B.90.04", Name: "Income Received in Advance", MinorHeadCode: "B.90"},
			{Code: "B.90.05", Name: "Unpaid Dividends", MinorHeadCode: "B.90"},
			{Code: "B.90.06", Name: "Other Payables", MinorHeadCode: "B.90"},
			{Code: "B.90.07", Name: "Salary Payable", MinorHeadCode: "B.90"},
			{Code: "B.90.08", Name: "Expenses Payable", MinorHeadCode: "B.90"},
			{Code: "B.100.01", Name: "Provision for Taxation", MinorHeadCode: "B.100"},
			{Code: "B.100.02", Name: "Provision for Employee Benefits", MinorHeadCode: "B.100"},
			{Code: "B.100.03", Name: "Other Short-term Provisions", MinorHeadCode: "B.100"},
			{Code: "C.10.01", Name: "Sale of Products", MinorHeadCode: "C.10"},
			{Code: "C.10.02", Name: "Sale of Services", MinorHeadCode: "C.10"},
			{Code: "C.10.03", Name: "Other Operating Revenue", MinorHeadCode: "C.10"},
			{Code: "C.20.01", Name: "Interest Income", MinorHeadCode: "C.20"},
			{Code: "C.20.02", Name: "Dividend Income", MinorHeadCode: "C.20"},
			{Code: "C.20.03", Name: "Gain on Sale of Investments", MinorHeadCode: "C.20"},
			{Code: "C.20.04", Name: "Foreign Exchange Gain", MinorHeadCode: "C.20"},
			{Code: "C.20.05", Name: "Other Non-operating Income", MinorHeadCode: "C.20"},
			{Code: "C.30.01", Name: "Opening Stock of Raw Materials", MinorHeadCode: "C.30"},
			{Code: "C.30.02", Name: "Purchases of Raw Materials", MinorHeadCode: "C.30"},
			{Code: "C.30.03", Name: "Closing Stock of Raw Materials", MinorHeadCode: "C.30"},
			{Code: "C.30.04", Name: "Consumption of stores and spare parts", MinorHeadCode: "C.30"},
			{Code: "C.40.01", Name: "Purchases – Trading Goods", MinorHeadCode: "C.40"},
			{Code: "C.50.01", Name: "Increase / Decrease in Inventories", MinorHeadCode: "C.50"},
			{Code: "C.60.01", Name: "Salaries & Wages", MinorHeadCode: "C.60"},
			{Code: "C.60.02", Name: "PF / ESI / Superannuation", MinorHeadCode: "C.60"},
			{Code: "C.60.03", Name: "Staff Welfare Expenses", MinorHeadCode: "C.60"},
			{Code: "C.60.04", Name: "Director's Salary", MinorHeadCode: "C.60"},
			{Code: "C.60.05", Name: "Employee Insurance", MinorHeadCode: "C.60"},
			{Code: "C.60.06", Name: "Bonus", MinorHeadCode: "C.60"},
			{Code: "C.60.07", Name: "Labour Charges", MinorHeadCode: "C.60"},
			{Code: "C.70.01", Name: "Interest on Borrowings", MinorHeadCode: "C.70"},
			{Code: "C.70.02", Name: "Other Borrowing Costs", MinorHeadCode: "C.70"},
			{Code: "C.80.01", Name: "Depreciation – PPE", MinorHeadCode: "C.80"},
			{Code: "C.80.02", Name: "Amortisation – Intangibles", MinorHeadCode: "C.80"},
			{Code: "C.90.01", Name: "Power & Fuel", MinorHeadCode: "C.90"},
			{Code: "C.90.02", Name: "Rent", MinorHeadCode: "C.90"},
			{Code: "C.90.03", Name: "Repairs & Maintenance", MinorHeadCode: "C.90"},
			{Code: "C.90.04", Name: "Legal & Professional Fees", MinorHeadCode: "C.90"},
			{Code: "C.90.05", Name: "Loss on Sale of Assets", MinorHeadCode: "C.90"},
			{Code: "C.90.06", Name: "Auditor Remuneration", MinorHeadCode: "C.90"},
			{Code: "C.90.07", Name: "Insurance", MinorHeadCode: "C.90"},
			{Code: "C.90.08", Name: "Rates & Taxes", MinorHeadCode: "C.90"},
			{Code: "C.90.09", Name: "CSR & Donations", MinorHeadCode: "C.90"},
			{Code: "C.90.10", Name: "Bank Charges", MinorHeadCode: "C.90"},
			{Code: "C.90.11", Name: "Bad Debts & Provisions", MinorHeadCode: "C.90"},
			{Code: "C.90.12", Name: "Administrative & Office Expenses", MinorHeadCode: "C.90"},
			{Code: "C.90.13", Name: "Communication & IT Expenses", MinorHeadCode: "C.90"},
			{Code: "C.90.14", Name: "Printing, Stationery & Courier", MinorHeadCode: "C.90"},
			{Code: "C.90.15", Name: "Travel, Conveyance & Vehicle Expenses", MinorHeadCode: "C.90"},
			{Code: "C.90.16", Name: "Sales, Marketing & Promotion Expenses", MinorHeadCode: "C.90"},
			{Code: "C.90.17", Name: "Commission & Brokerage", MinorHeadCode: "C.90"},
			{Code: "C.90.18", Name: "Logistics, Freight & Transportation", MinorHeadCode: "C.90"},
			{Code: "C.90.19", Name: "Foreign Exchange Loss", MinorHeadCode: "C.90"},
			{Code: "C.90.20", Name: "Miscellaneous Expenses", MinorHeadCode: "C.90"},
		},
	}
}
