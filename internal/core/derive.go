package core

import "github.com/shopspring/decimal"

// ScheduleEpsilon is the materiality floor for the schedule-over-rollup
// precedence rule: a schedule total at or below this magnitude is treated
// as "not entered" and the trial balance rollup is used instead.
var ScheduleEpsilon = decimal.NewFromFloat(0.01)

// SignConvention selects how an aggregated balance is presented.
type SignConvention int

const (
	// SignSigned keeps the raw debit-positive, credit-negative sum.
	// Profit and loss arithmetic works on signed values.
	SignSigned SignConvention = iota
	// SignNonNegative flips credit-side balances so statement lines read
	// positive. Balance sheet and note presentation use this.
	SignNonNegative
)

// StatementLine is one presented row of a derived statement.
type StatementLine struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	NoteRef string          `json:"noteRef,omitempty"`
	CY      decimal.Decimal `json:"cy"`
	PY      decimal.Decimal `json:"py"`
}

type amountPair struct {
	cy decimal.Decimal
	py decimal.Decimal
}

// Snapshot is the aggregated view of a classified trial balance, indexed
// by grouping and minor head. Sums are signed (debit-positive); the sign
// convention is applied at read time.
type Snapshot struct {
	chart      *Chart
	byGrouping map[string]amountPair
	byMinor    map[string]amountPair
}

// NewSnapshot aggregates the mapped trial balance rows. Unmapped rows are
// skipped; the rules engine flags them separately.
func NewSnapshot(chart *Chart, items []TrialBalanceItem) *Snapshot {
	s := &Snapshot{
		chart:      chart,
		byGrouping: make(map[string]amountPair),
		byMinor:    make(map[string]amountPair),
	}
	for i := range items {
		item := &items[i]
		if !item.IsMapped {
			continue
		}
		g := s.byGrouping[item.GroupingCode]
		g.cy = g.cy.Add(item.ClosingCY)
		g.py = g.py.Add(item.ClosingPY)
		s.byGrouping[item.GroupingCode] = g

		m := s.byMinor[item.MinorHeadCode]
		m.cy = m.cy.Add(item.ClosingCY)
		m.py = m.py.Add(item.ClosingPY)
		s.byMinor[item.MinorHeadCode] = m
	}
	return s
}

// present applies the sign convention for the head the code belongs to.
func (s *Snapshot) present(code string, v decimal.Decimal, conv SignConvention) decimal.Decimal {
	if conv == SignNonNegative {
		if side, ok := s.chart.SideOf(code); ok && side == SideCredit {
			return v.Neg()
		}
	}
	return v
}

// Grouping returns the aggregated CY and PY balances of one grouping.
func (s *Snapshot) Grouping(code string, conv SignConvention) (cy, py decimal.Decimal) {
	p := s.byGrouping[code]
	return s.present(code, p.cy, conv), s.present(code, p.py, conv)
}

// Minor returns the aggregated CY and PY balances of one minor head.
func (s *Snapshot) Minor(code string, conv SignConvention) (cy, py decimal.Decimal) {
	p := s.byMinor[code]
	return s.present(code, p.cy, conv), s.present(code, p.py, conv)
}

// MinorCY is shorthand for the current-year minor head balance.
func (s *Snapshot) MinorCY(code string, conv SignConvention) decimal.Decimal {
	cy, _ := s.Minor(code, conv)
	return cy
}

// GroupingCY is shorthand for the current-year grouping balance.
func (s *Snapshot) GroupingCY(code string, conv SignConvention) decimal.Decimal {
	cy, _ := s.Grouping(code, conv)
	return cy
}

// resolveLine applies the schedule-over-rollup precedence: a material
// schedule value wins, otherwise the rollup stands.
func resolveLine(scheduleValue, rollup decimal.Decimal) decimal.Decimal {
	if scheduleValue.Abs().GreaterThan(ScheduleEpsilon) {
		return scheduleValue
	}
	return rollup
}

// minorRollup is the signed minor-head sum straight off the items, used
// where no Snapshot has been built yet.
func minorRollup(items []TrialBalanceItem, minorCode string) decimal.Decimal {
	t := decimal.Zero
	for i := range items {
		if items[i].IsMapped && items[i].MinorHeadCode == minorCode {
			t = t.Add(items[i].ClosingCY)
		}
	}
	return t
}

// Statements is the full derived output for an entity.
type Statements struct {
	BalanceSheet *BalanceSheet `json:"balanceSheet"`
	ProfitLoss   *ProfitLoss   `json:"profitLoss"`
	CashFlow     *CashFlow     `json:"cashFlow"`
	Ratios       *RatioReport  `json:"ratios"`
	Findings     []Finding     `json:"findings"`
}

// DeriveStatements builds the complete statement set from the entity's
// classified trial balance and schedules. Derivation is pure: it never
// mutates the entity and calling it twice yields identical output.
func DeriveStatements(chart *Chart, entity *Entity) (*Statements, error) {
	if err := ValidateTrialBalance(entity.TrialBalance); err != nil {
		return nil, err
	}
	snap := NewSnapshot(chart, entity.TrialBalance)
	pl := DeriveProfitLoss(snap, entity)
	bs := DeriveBalanceSheet(snap, entity, pl)
	cf := DeriveCashFlow(snap, entity, pl)
	ratios := DeriveRatios(snap, entity, bs, pl)
	return &Statements{
		BalanceSheet: bs,
		ProfitLoss:   pl,
		CashFlow:     cf,
		Ratios:       ratios,
		Findings:     CheckStatements(chart, entity),
	}, nil
}
