package core

import "github.com/shopspring/decimal"

// ScheduleData is the preparer-entered detail behind the statements. Each
// schedule is optional; statement derivation prefers a schedule total over
// the trial balance rollup whenever the schedule carries a material value.
type ScheduleData struct {
	ShareCapital       *ShareCapitalSchedule       `json:"shareCapital,omitempty"`
	OtherEquity        *OtherEquitySchedule        `json:"otherEquity,omitempty"`
	PartnersFunds      *PartnersFundsSchedule      `json:"partnersFunds,omitempty"`
	Borrowings         *BorrowingsSchedule         `json:"borrowings,omitempty"`
	TradePayables      *TradePayablesSchedule      `json:"tradePayables,omitempty"`
	PPE                *PPESchedule                `json:"ppe,omitempty"`
	Intangibles        *PPESchedule                `json:"intangibles,omitempty"`
	CWIP               *CWIPSchedule               `json:"cwip,omitempty"`
	Inventories        *InventoriesSchedule        `json:"inventories,omitempty"`
	TradeReceivables   *TradeReceivablesSchedule   `json:"tradeReceivables,omitempty"`
	CashAndBank        *CashAndBankSchedule        `json:"cashAndBank,omitempty"`
	CostOfMaterials    *CostOfMaterialsSchedule    `json:"costOfMaterials,omitempty"`
	ChangesInventories *ChangesInventoriesSchedule `json:"changesInInventories,omitempty"`
	EmployeeBenefits   *EmployeeBenefitsSchedule   `json:"employeeBenefits,omitempty"`
	TaxExpense         *TaxExpenseSchedule         `json:"taxExpense,omitempty"`
	ExceptionalItems   *ExceptionalItemsSchedule   `json:"exceptionalItems,omitempty"`
	EPS                *EPSSchedule                `json:"eps,omitempty"`
	RatioExplanations  []RatioExplanation          `json:"ratioExplanations,omitempty"`
	NoteSelections     []NoteSelection             `json:"noteSelections,omitempty"`
}

// ScheduleItem is a generic labelled amount pair used by list-shaped
// schedules.
type ScheduleItem struct {
	Label    string          `json:"label"`
	AmountCY decimal.Decimal `json:"amountCy"`
	AmountPY decimal.Decimal `json:"amountPy"`
}

func sumCY(items []ScheduleItem) decimal.Decimal {
	t := decimal.Zero
	for i := range items {
		t = t.Add(items[i].AmountCY)
	}
	return t
}

func sumPY(items []ScheduleItem) decimal.Decimal {
	t := decimal.Zero
	for i := range items {
		t = t.Add(items[i].AmountPY)
	}
	return t
}

// ── Equity ──

type ShareClass struct {
	ClassName      string          `json:"className"`
	FaceValue      decimal.Decimal `json:"faceValue"`
	AuthorizedQty  decimal.Decimal `json:"authorizedQty"`
	IssuedQty      decimal.Decimal `json:"issuedQty"`
	PaidUpQty      decimal.Decimal `json:"paidUpQty"`
	PaidUpAmountCY decimal.Decimal `json:"paidUpAmountCy"`
	PaidUpAmountPY decimal.Decimal `json:"paidUpAmountPy"`
}

// Shareholder is one >5% holder for the disclosure table.
type Shareholder struct {
	Name       string          `json:"name"`
	SharesHeld decimal.Decimal `json:"sharesHeld"`
	PercentCY  decimal.Decimal `json:"percentCy"`
	PercentPY  decimal.Decimal `json:"percentPy"`
}

type ShareCapitalSchedule struct {
	Classes      []ShareClass  `json:"classes"`
	Shareholders []Shareholder `json:"shareholders,omitempty"`
}

// TotalCY is the paid-up capital across all share classes.
func (s *ShareCapitalSchedule) TotalCY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Classes {
		t = t.Add(s.Classes[i].PaidUpAmountCY)
	}
	return t
}

func (s *ShareCapitalSchedule) TotalPY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Classes {
		t = t.Add(s.Classes[i].PaidUpAmountPY)
	}
	return t
}

// ReserveMovement tracks one reserve from opening to closing.
type ReserveMovement struct {
	Name      string          `json:"name"`
	Opening   decimal.Decimal `json:"opening"`
	Additions decimal.Decimal `json:"additions"`
	Deletions decimal.Decimal `json:"deletions"`
	OpeningPY decimal.Decimal `json:"openingPy"`
}

// Closing is opening plus additions less deletions.
func (r ReserveMovement) Closing() decimal.Decimal {
	return r.Opening.Add(r.Additions).Sub(r.Deletions)
}

type OtherEquitySchedule struct {
	Reserves []ReserveMovement `json:"reserves"`
}

func (s *OtherEquitySchedule) TotalCY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Reserves {
		t = t.Add(s.Reserves[i].Closing())
	}
	return t
}

func (s *OtherEquitySchedule) TotalPY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Reserves {
		t = t.Add(s.Reserves[i].Opening)
	}
	return t
}

// PartnerAccount is one partner's capital movement for the year.
type PartnerAccount struct {
	Name              string          `json:"name"`
	Opening           decimal.Decimal `json:"opening"`
	Introduced        decimal.Decimal `json:"introduced"`
	Remuneration      decimal.Decimal `json:"remuneration"`
	InterestOnCapital decimal.Decimal `json:"interestOnCapital"`
	ProfitShare       decimal.Decimal `json:"profitShare"`
	Drawings          decimal.Decimal `json:"drawings"`
	OpeningPY         decimal.Decimal `json:"openingPy"`
}

// Closing is the partner's closing capital balance.
func (p PartnerAccount) Closing() decimal.Decimal {
	return p.Opening.Add(p.Introduced).Add(p.Remuneration).
		Add(p.InterestOnCapital).Add(p.ProfitShare).Sub(p.Drawings)
}

type PartnersFundsSchedule struct {
	Partners []PartnerAccount `json:"partners"`
}

func (s *PartnersFundsSchedule) TotalCY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Partners {
		t = t.Add(s.Partners[i].Closing())
	}
	return t
}

func (s *PartnersFundsSchedule) TotalPY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Partners {
		t = t.Add(s.Partners[i].Opening)
	}
	return t
}

// TotalRemuneration is the aggregate partners' remuneration charged to
// the appropriation section of the income statement.
func (s *PartnersFundsSchedule) TotalRemuneration() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Partners {
		t = t.Add(s.Partners[i].Remuneration).Add(s.Partners[i].InterestOnCapital)
	}
	return t
}

// ── Borrowings ──

type BorrowingRow struct {
	Lender       string          `json:"lender"`
	Nature       string          `json:"nature"` // term loan, cash credit, deposit, ...
	Secured      bool            `json:"secured"`
	LongTerm     bool            `json:"longTerm"`
	BalanceCY    decimal.Decimal `json:"balanceCy"`
	BalancePY    decimal.Decimal `json:"balancePy"`
	// CurrentMaturity is the slice of a long-term loan repayable within
	// twelve months, presented under short-term borrowings.
	CurrentMaturity decimal.Decimal `json:"currentMaturity"`
}

type BorrowingsSchedule struct {
	Rows []BorrowingRow `json:"rows"`
}

// LongTermCY is long-term balances net of their current maturities.
func (s *BorrowingsSchedule) LongTermCY() decimal.Decimal {
	t := decimal.Zero
	for _, r := range s.Rows {
		if r.LongTerm {
			t = t.Add(r.BalanceCY).Sub(r.CurrentMaturity)
		}
	}
	return t
}

func (s *BorrowingsSchedule) LongTermPY() decimal.Decimal {
	t := decimal.Zero
	for _, r := range s.Rows {
		if r.LongTerm {
			t = t.Add(r.BalancePY)
		}
	}
	return t
}

// ShortTermCY is short-term balances plus current maturities of long-term
// debt.
func (s *BorrowingsSchedule) ShortTermCY() decimal.Decimal {
	t := decimal.Zero
	for _, r := range s.Rows {
		if r.LongTerm {
			t = t.Add(r.CurrentMaturity)
		} else {
			t = t.Add(r.BalanceCY)
		}
	}
	return t
}

func (s *BorrowingsSchedule) ShortTermPY() decimal.Decimal {
	t := decimal.Zero
	for _, r := range s.Rows {
		if !r.LongTerm {
			t = t.Add(r.BalancePY)
		}
	}
	return t
}

// ── Trade payables ──

// AgeingBucket is one column of a payables or receivables ageing table.
type AgeingBucket struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type TradePayablesSchedule struct {
	MSMECY       decimal.Decimal `json:"msmeCy"`
	MSMEPY       decimal.Decimal `json:"msmePy"`
	OthersCY     decimal.Decimal `json:"othersCy"`
	OthersPY     decimal.Decimal `json:"othersPy"`
	MSMEAgeing   []AgeingBucket  `json:"msmeAgeing,omitempty"`
	OthersAgeing []AgeingBucket  `json:"othersAgeing,omitempty"`
	// MSMEInterestDue is interest accrued to micro and small suppliers
	// under delayed-payment rules, disclosed separately.
	MSMEInterestDue decimal.Decimal `json:"msmeInterestDue"`
}

func (s *TradePayablesSchedule) TotalCY() decimal.Decimal {
	return s.MSMECY.Add(s.OthersCY)
}

func (s *TradePayablesSchedule) TotalPY() decimal.Decimal {
	return s.MSMEPY.Add(s.OthersPY)
}

// ── Fixed assets ──

// PPERow is one asset block in the fixed-asset register, gross block and
// accumulated depreciation movements for the year.
type PPERow struct {
	AssetClass       string          `json:"assetClass"`
	GroupingCode     string          `json:"groupingCode,omitempty"`
	GrossOpening     decimal.Decimal `json:"grossOpening"`
	Additions        decimal.Decimal `json:"additions"`
	Disposals        decimal.Decimal `json:"disposals"`
	DepOpening       decimal.Decimal `json:"depOpening"`
	DepForYear       decimal.Decimal `json:"depForYear"`
	DepOnDisposals   decimal.Decimal `json:"depOnDisposals"`
	NetBlockOpening  decimal.Decimal `json:"netBlockOpening"`
}

// GrossClosing is opening gross block plus additions less disposals.
func (r PPERow) GrossClosing() decimal.Decimal {
	return r.GrossOpening.Add(r.Additions).Sub(r.Disposals)
}

// DepClosing is accumulated depreciation at year end.
func (r PPERow) DepClosing() decimal.Decimal {
	return r.DepOpening.Add(r.DepForYear).Sub(r.DepOnDisposals)
}

// NetBlockClosing is the carrying amount at year end.
func (r PPERow) NetBlockClosing() decimal.Decimal {
	return r.GrossClosing().Sub(r.DepClosing())
}

// PPESchedule serves both tangible and intangible asset registers.
type PPESchedule struct {
	Rows []PPERow `json:"rows"`
}

func (s *PPESchedule) NetBlockCY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Rows {
		t = t.Add(s.Rows[i].NetBlockClosing())
	}
	return t
}

func (s *PPESchedule) NetBlockPY() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Rows {
		t = t.Add(s.Rows[i].NetBlockOpening)
	}
	return t
}

// DepreciationForYear is the charge flowing into the income statement.
func (s *PPESchedule) DepreciationForYear() decimal.Decimal {
	t := decimal.Zero
	for i := range s.Rows {
		t = t.Add(s.Rows[i].DepForYear)
	}
	return t
}

type CWIPSchedule struct {
	Projects []ScheduleItem `json:"projects"`
	// Ageing by project duration, for the Schedule III ageing table.
	Ageing []AgeingBucket `json:"ageing,omitempty"`
}

func (s *CWIPSchedule) TotalCY() decimal.Decimal { return sumCY(s.Projects) }
func (s *CWIPSchedule) TotalPY() decimal.Decimal { return sumPY(s.Projects) }

// ── Current assets ──

type InventoriesSchedule struct {
	Items []ScheduleItem `json:"items"` // raw materials, WIP, finished goods, ...
}

func (s *InventoriesSchedule) TotalCY() decimal.Decimal { return sumCY(s.Items) }
func (s *InventoriesSchedule) TotalPY() decimal.Decimal { return sumPY(s.Items) }

type TradeReceivablesSchedule struct {
	// Ageing buckets cover the current year only; prior-year figures fall
	// back to the trial balance rollup.
	UndisputedGood     []AgeingBucket  `json:"undisputedGood"`
	UndisputedDoubtful []AgeingBucket  `json:"undisputedDoubtful,omitempty"`
	DisputedGood       []AgeingBucket  `json:"disputedGood,omitempty"`
	DisputedDoubtful   []AgeingBucket  `json:"disputedDoubtful,omitempty"`
	ProvisionDoubtful  decimal.Decimal `json:"provisionDoubtful"`
}

// TotalCY is gross receivables across all ageing tables less the
// provision for doubtful debts.
func (s *TradeReceivablesSchedule) TotalCY() decimal.Decimal {
	t := decimal.Zero
	for _, buckets := range [][]AgeingBucket{
		s.UndisputedGood, s.UndisputedDoubtful, s.DisputedGood, s.DisputedDoubtful,
	} {
		for _, b := range buckets {
			t = t.Add(b.Amount)
		}
	}
	return t.Sub(s.ProvisionDoubtful)
}

type CashAndBankSchedule struct {
	CashOnHand   decimal.Decimal `json:"cashOnHand"`
	BankBalances []ScheduleItem  `json:"bankBalances"`
	// FixedDeposits maturing within twelve months.
	FixedDeposits []ScheduleItem `json:"fixedDeposits,omitempty"`
}

// TotalCY covers the current year only; prior-year cash comes from the
// trial balance rollup.
func (s *CashAndBankSchedule) TotalCY() decimal.Decimal {
	return s.CashOnHand.Add(sumCY(s.BankBalances)).Add(sumCY(s.FixedDeposits))
}

// ── Income statement schedules ──

type CostOfMaterialsSchedule struct {
	OpeningStock   decimal.Decimal `json:"openingStock"`
	Purchases      decimal.Decimal `json:"purchases"`
	ClosingStock   decimal.Decimal `json:"closingStock"`
	OpeningStockPY decimal.Decimal `json:"openingStockPy"`
	PurchasesPY    decimal.Decimal `json:"purchasesPy"`
	ClosingStockPY decimal.Decimal `json:"closingStockPy"`
}

// ConsumedCY is opening stock plus purchases less closing stock.
func (s *CostOfMaterialsSchedule) ConsumedCY() decimal.Decimal {
	return s.OpeningStock.Add(s.Purchases).Sub(s.ClosingStock)
}

func (s *CostOfMaterialsSchedule) ConsumedPY() decimal.Decimal {
	return s.OpeningStockPY.Add(s.PurchasesPY).Sub(s.ClosingStockPY)
}

type ChangesInventoriesSchedule struct {
	OpeningFGWIPStock   decimal.Decimal `json:"openingFgWipStock"`
	ClosingFGWIPStock   decimal.Decimal `json:"closingFgWipStock"`
	OpeningFGWIPStockPY decimal.Decimal `json:"openingFgWipStockPy"`
	ClosingFGWIPStockPY decimal.Decimal `json:"closingFgWipStockPy"`
}

// ChangeCY is positive when inventories decreased (an expense).
func (s *ChangesInventoriesSchedule) ChangeCY() decimal.Decimal {
	return s.OpeningFGWIPStock.Sub(s.ClosingFGWIPStock)
}

func (s *ChangesInventoriesSchedule) ChangePY() decimal.Decimal {
	return s.OpeningFGWIPStockPY.Sub(s.ClosingFGWIPStockPY)
}

type EmployeeBenefitsSchedule struct {
	// Current year breakup only; prior-year benefits fall back to the
	// trial balance rollup.
	Items []ScheduleItem `json:"items"`
}

func (s *EmployeeBenefitsSchedule) TotalCY() decimal.Decimal { return sumCY(s.Items) }

type TaxExpenseSchedule struct {
	CurrentTax    decimal.Decimal `json:"currentTax"`
	DeferredTax   decimal.Decimal `json:"deferredTax"`
	CurrentTaxPY  decimal.Decimal `json:"currentTaxPy"`
	DeferredTaxPY decimal.Decimal `json:"deferredTaxPy"`
}

func (s *TaxExpenseSchedule) TotalCY() decimal.Decimal {
	return s.CurrentTax.Add(s.DeferredTax)
}

func (s *TaxExpenseSchedule) TotalPY() decimal.Decimal {
	return s.CurrentTaxPY.Add(s.DeferredTaxPY)
}

type ExceptionalItemsSchedule struct {
	Items []ScheduleItem `json:"items"`
}

func (s *ExceptionalItemsSchedule) TotalCY() decimal.Decimal { return sumCY(s.Items) }
func (s *ExceptionalItemsSchedule) TotalPY() decimal.Decimal { return sumPY(s.Items) }

type EPSSchedule struct {
	WeightedShares   decimal.Decimal `json:"weightedShares"`
	WeightedSharesPY decimal.Decimal `json:"weightedSharesPy"`
	// DilutiveShares is additional potential equity for diluted EPS.
	DilutiveShares   decimal.Decimal `json:"dilutiveShares"`
	DilutiveSharesPY decimal.Decimal `json:"dilutiveSharesPy"`
	FaceValue        decimal.Decimal `json:"faceValue"`
}

// RatioExplanation is the preparer's note for a ratio that moved more
// than the disclosure threshold year on year.
type RatioExplanation struct {
	RatioKey    string `json:"ratioKey"`
	Explanation string `json:"explanation"`
}

// NoteSelection maps a ledger to a custom note row chosen by the
// preparer.
type NoteSelection struct {
	NoteLineItemID string `json:"noteLineItemId"`
	GroupingCode   string `json:"groupingCode"`
	Label          string `json:"label"`
}
