package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finstat/internal/core"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// tbItem builds a mapped trial balance row, deriving the minor and major
// head codes from the grouping code.
func tbItem(name, grouping, cy, py string) core.TrialBalanceItem {
	minor := grouping[:strings.LastIndex(grouping, ".")]
	major := minor[:strings.Index(minor, ".")]
	return core.TrialBalanceItem{
		ID:            name,
		LedgerName:    name,
		ClosingCY:     dec(cy),
		ClosingPY:     dec(py),
		IsMapped:      true,
		MajorHeadCode: major,
		MinorHeadCode: minor,
		GroupingCode:  grouping,
	}
}

func testChart(t *testing.T) *core.Chart {
	t.Helper()
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatal(err)
	}
	return chart
}

// testEntity is a small manufacturing company whose trial balance nets to
// zero in both years. CY profit is 150, PY profit 120.
func testEntity() *core.Entity {
	return &core.Entity{
		ID:   "ent-1",
		Name: "Meridian Castings Pvt Ltd",
		Type: core.EntityCompany,
		TrialBalance: []core.TrialBalanceItem{
			tbItem("Plant & Machinery", "A.10.03", "1000", "900"),
			tbItem("Finished Goods", "A.100.03", "300", "250"),
			tbItem("Sundry Debtors", "A.110.01", "400", "350"),
			tbItem("HDFC Bank CA", "A.120.02", "500", "300"),
			tbItem("Equity Share Capital", "B.10.01", "-1000", "-1000"),
			tbItem("Retained Earnings", "B.20.07", "-450", "-330"),
			tbItem("Term Loan - HDFC", "B.30.01", "-200", "-250"),
			tbItem("Cash Credit - SBI", "B.70.01", "-250", "0"),
			tbItem("Sundry Creditors", "B.80.02", "-150", "-100"),
			tbItem("Sales - Domestic", "C.10.01", "-2000", "-1800"),
			tbItem("Purchases of Raw Materials", "C.30.02", "1200", "1100"),
			tbItem("Salaries & Wages", "C.60.01", "500", "450"),
			tbItem("Interest on Term Loan", "C.70.01", "50", "40"),
			tbItem("Depreciation on Plant", "C.80.01", "100", "90"),
		},
	}
}

func TestValidateTrialBalance(t *testing.T) {
	entity := testEntity()
	if err := core.ValidateTrialBalance(entity.TrialBalance); err != nil {
		t.Fatalf("balanced trial balance rejected: %v", err)
	}

	entity.TrialBalance[0].ClosingCY = entity.TrialBalance[0].ClosingCY.Add(dec("5"))
	err := core.ValidateTrialBalance(entity.TrialBalance)
	var unbalanced *core.UnbalancedTrialBalanceError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected *UnbalancedTrialBalanceError, got %v", err)
	}
	if !unbalanced.Difference.Equal(dec("5")) {
		t.Errorf("difference = %s, want 5", unbalanced.Difference)
	}
}

func TestDeriveProfitLoss_Waterfall(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)

	checks := []struct {
		label string
		got   decimal.Decimal
		want  string
	}{
		{"revenue CY", pl.RevenueFromOperations.CY, "2000"},
		{"revenue PY", pl.RevenueFromOperations.PY, "1800"},
		{"total income CY", pl.TotalIncome.CY, "2000"},
		{"total expenses CY", pl.TotalExpenses.CY, "1850"},
		{"PBT CY", pl.ProfitBeforeTax.CY, "150"},
		{"PBT PY", pl.ProfitBeforeTax.PY, "120"},
		{"PAT CY", pl.ProfitAfterTax.CY, "150"},
		{"net profit transferred CY", pl.NetProfitTransferred.CY, "150"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.label, c.got, c.want)
		}
	}
	if pl.PartnersRemuneration != nil {
		t.Error("company statements must not carry a partners' remuneration line")
	}
}

func TestDeriveProfitLoss_TaxAndAppropriation(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	entity.Type = core.EntityLLP
	entity.Schedules.TaxExpense = &core.TaxExpenseSchedule{
		CurrentTax:  dec("30"),
		DeferredTax: dec("10"),
	}
	entity.Schedules.PartnersFunds = &core.PartnersFundsSchedule{
		Partners: []core.PartnerAccount{
			{Name: "A", Remuneration: dec("40")},
			{Name: "B", InterestOnCapital: dec("20")},
		},
	}
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)

	if !pl.ProfitAfterTax.CY.Equal(dec("110")) {
		t.Errorf("PAT CY = %s, want 110", pl.ProfitAfterTax.CY)
	}
	if pl.PartnersRemuneration == nil {
		t.Fatal("expected a partners' remuneration line")
	}
	if !pl.PartnersRemuneration.CY.Equal(dec("60")) {
		t.Errorf("partners' remuneration = %s, want 60", pl.PartnersRemuneration.CY)
	}
	if !pl.NetProfitTransferred.CY.Equal(dec("50")) {
		t.Errorf("net profit transferred = %s, want 50", pl.NetProfitTransferred.CY)
	}
}

func TestDeriveBalanceSheet_BothSidesAgree(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)
	bs := core.DeriveBalanceSheet(snap, entity, pl)

	if !bs.TotalAssets.CY.Equal(dec("2200")) {
		t.Errorf("total assets CY = %s, want 2200", bs.TotalAssets.CY)
	}
	if !bs.TotalAssets.CY.Equal(bs.TotalEquityLiabilities.CY) {
		t.Errorf("CY sides differ: assets %s vs equity+liabilities %s",
			bs.TotalAssets.CY, bs.TotalEquityLiabilities.CY)
	}
	if !bs.TotalAssets.PY.Equal(bs.TotalEquityLiabilities.PY) {
		t.Errorf("PY sides differ: assets %s vs equity+liabilities %s",
			bs.TotalAssets.PY, bs.TotalEquityLiabilities.PY)
	}
	// Equity carries the unappropriated current-year result.
	if !bs.Equity.Total.CY.Equal(dec("1600")) {
		t.Errorf("equity CY = %s, want 1600", bs.Equity.Total.CY)
	}
	if !bs.ReconciliationDifference.CY.IsZero() || !bs.ReconciliationDifference.PY.IsZero() {
		t.Errorf("reconciliation difference = %s / %s, want zero",
			bs.ReconciliationDifference.CY, bs.ReconciliationDifference.PY)
	}
}

func TestDeriveBalanceSheet_SchedulePrecedence(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	// Schedule total differs from the A.100 rollup of 300; the schedule
	// wins for the line.
	entity.Schedules.Inventories = &core.InventoriesSchedule{
		Items: []core.ScheduleItem{
			{Label: "Raw Materials", AmountCY: dec("120"), AmountPY: dec("100")},
			{Label: "Finished Goods", AmountCY: dec("190"), AmountPY: dec("150")},
		},
	}
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)
	bs := core.DeriveBalanceSheet(snap, entity, pl)

	var inv core.StatementLine
	for _, l := range bs.CurrentAssets.Lines {
		if l.Key == "inventories" {
			inv = l
		}
	}
	if !inv.CY.Equal(dec("310")) {
		t.Errorf("inventories CY = %s, want schedule total 310", inv.CY)
	}
	if !inv.PY.Equal(dec("250")) {
		t.Errorf("inventories PY = %s, want schedule total 250", inv.PY)
	}

	// A zero-valued schedule is treated as not entered.
	entity.Schedules.Inventories = &core.InventoriesSchedule{}
	bs = core.DeriveBalanceSheet(snap, entity, pl)
	for _, l := range bs.CurrentAssets.Lines {
		if l.Key == "inventories" && !l.CY.Equal(dec("300")) {
			t.Errorf("empty schedule: inventories CY = %s, want rollup 300", l.CY)
		}
	}
}

func TestDeriveCashFlow_Reconciles(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)
	cf := core.DeriveCashFlow(snap, entity, pl)

	if !cf.OpeningCash.CY.Equal(dec("300")) {
		t.Errorf("opening cash = %s, want 300", cf.OpeningCash.CY)
	}
	if !cf.ClosingCash.CY.Equal(dec("500")) {
		t.Errorf("closing cash = %s, want 500", cf.ClosingCash.CY)
	}
	if !cf.NetIncrease.CY.Equal(dec("200")) {
		t.Errorf("net increase = %s, want 200", cf.NetIncrease.CY)
	}
	if !cf.ReconciliationDifference.IsZero() {
		t.Errorf("reconciliation difference = %s, want 0", cf.ReconciliationDifference)
	}
	if !cf.Operating.Total.CY.Equal(dec("250")) {
		t.Errorf("operating total = %s, want 250", cf.Operating.Total.CY)
	}
	if !cf.Investing.Total.CY.Equal(dec("-200")) {
		t.Errorf("investing total = %s, want -200", cf.Investing.Total.CY)
	}
	if !cf.Financing.Total.CY.Equal(dec("150")) {
		t.Errorf("financing total = %s, want 150", cf.Financing.Total.CY)
	}
}

func TestDeriveRatios_SignificantChangeNeedsExplanation(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	snap := core.NewSnapshot(chart, entity.TrialBalance)
	pl := core.DeriveProfitLoss(snap, entity)
	bs := core.DeriveBalanceSheet(snap, entity, pl)
	ratios := core.DeriveRatios(snap, entity, bs, pl)

	byKey := make(map[string]core.Ratio)
	for _, r := range ratios.Ratios {
		byKey[r.Key] = r
	}

	cur := byKey["current-ratio"]
	if !cur.CY.Equal(dec("3")) {
		t.Errorf("current ratio CY = %s, want 3", cur.CY)
	}
	if !cur.PY.Equal(dec("9")) {
		t.Errorf("current ratio PY = %s, want 9", cur.PY)
	}
	if !cur.Significant || !cur.ExplanationMissing {
		t.Error("a two-thirds drop in the current ratio must demand an explanation")
	}
	if !ratios.HasBlockers() {
		t.Error("report should block finalization while explanations are missing")
	}

	entity.Schedules.RatioExplanations = []core.RatioExplanation{}
	for _, r := range ratios.Ratios {
		if r.Significant {
			entity.Schedules.RatioExplanations = append(entity.Schedules.RatioExplanations,
				core.RatioExplanation{RatioKey: r.Key, Explanation: "working capital cycle shortened after the SBI cash credit drawdown"})
		}
	}
	ratios = core.DeriveRatios(snap, entity, bs, pl)
	if ratios.HasBlockers() {
		t.Error("explained movements must not block finalization")
	}
}

func TestDeriveStatements_Idempotent(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	entity.Schedules.TradePayables = &core.TradePayablesSchedule{
		OthersCY: dec("150"), OthersPY: dec("100"),
	}
	entity.Schedules.TradeReceivables = &core.TradeReceivablesSchedule{
		UndisputedGood: []core.AgeingBucket{{Label: "Less than 6 months", Amount: dec("400")}},
	}

	first, err := core.DeriveStatements(chart, entity)
	if err != nil {
		t.Fatal(err)
	}
	second, err := core.DeriveStatements(chart, entity)
	if err != nil {
		t.Fatal(err)
	}
	if !first.BalanceSheet.TotalAssets.CY.Equal(second.BalanceSheet.TotalAssets.CY) ||
		!first.ProfitLoss.ProfitAfterTax.CY.Equal(second.ProfitLoss.ProfitAfterTax.CY) ||
		!first.CashFlow.NetIncrease.CY.Equal(second.CashFlow.NetIncrease.CY) {
		t.Error("derivation must be deterministic across calls")
	}
	if len(first.Findings) != 0 {
		t.Errorf("clean entity should produce no findings, got %v", first.Findings)
	}
}
