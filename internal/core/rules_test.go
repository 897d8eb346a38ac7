package core_test

import (
	"testing"

	"finstat/internal/core"
)

func findingRules(findings []core.Finding) map[string]core.Finding {
	m := make(map[string]core.Finding, len(findings))
	for _, f := range findings {
		m[f.Rule] = f
	}
	return m
}

func TestCheckStatements_DisclosureGaps(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()

	rules := findingRules(core.CheckStatements(chart, entity))
	if f, ok := rules["msme-disclosure"]; !ok || f.Severity != core.SeverityHigh {
		t.Errorf("expected a HIGH msme-disclosure finding, got %+v", rules)
	}
	if f, ok := rules["receivables-ageing"]; !ok || f.Severity != core.SeverityHigh {
		t.Errorf("expected a HIGH receivables-ageing finding, got %+v", rules)
	}

	entity.Schedules.TradePayables = &core.TradePayablesSchedule{OthersCY: dec("150")}
	entity.Schedules.TradeReceivables = &core.TradeReceivablesSchedule{
		UndisputedGood: []core.AgeingBucket{{Label: "Less than 6 months", Amount: dec("400")}},
	}
	rules = findingRules(core.CheckStatements(chart, entity))
	if _, ok := rules["msme-disclosure"]; ok {
		t.Error("msme finding should clear once the split is entered")
	}
	if _, ok := rules["receivables-ageing"]; ok {
		t.Error("ageing finding should clear once the schedule is entered")
	}
}

func TestCheckStatements_UnmappedLedgerBlocks(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	entity.TrialBalance = append(entity.TrialBalance,
		core.TrialBalanceItem{ID: "x1", LedgerName: "Suspense", ClosingCY: dec("10")},
		core.TrialBalanceItem{ID: "x2", LedgerName: "Rounding", ClosingCY: dec("-10")},
		core.TrialBalanceItem{ID: "x3", LedgerName: "Old Nil Ledger"},
	)
	findings := core.CheckStatements(chart, entity)
	unmapped := 0
	for _, f := range findings {
		if f.Rule == "unmapped-ledger" {
			unmapped++
			if f.Severity != core.SeverityCritical {
				t.Errorf("unmapped ledger severity = %s, want CRITICAL", f.Severity)
			}
		}
	}
	if unmapped != 2 {
		t.Errorf("got %d unmapped findings, want 2 (zero-balance ledgers are ignored)", unmapped)
	}
	if !core.HasBlocking(findings) {
		t.Error("critical findings must block finalization")
	}
}

func TestCheckStatements_NameHeuristics(t *testing.T) {
	chart := testChart(t)
	entity := testEntity()
	entity.TrialBalance = append(entity.TrialBalance,
		tbItem("Current Maturity of HDFC Term Loan", "B.30.01", "-25", "0"),
		tbItem("Depreciation Written Back", "C.90.20", "25", "0"),
	)
	rules := findingRules(core.CheckStatements(chart, entity))

	if f, ok := rules["current-maturity-placement"]; !ok || f.Severity != core.SeverityHigh {
		t.Errorf("expected a HIGH current-maturity-placement finding, got %+v", rules)
	}
	if f, ok := rules["depreciation-placement"]; !ok || f.Severity != core.SeverityMedium {
		t.Errorf("expected a MEDIUM depreciation-placement finding, got %+v", rules)
	}
	if core.HasBlocking(core.CheckStatements(chart, entity)) {
		// The heuristic findings are advisory only; the balance equation
		// still holds for this fixture.
		t.Error("HIGH and MEDIUM findings must not block finalization")
	}
}

func TestClassifyAndAcceptSuggestion(t *testing.T) {
	chart := testChart(t)
	item := core.TrialBalanceItem{ID: "l1", LedgerName: "Godrej Almirah", ClosingCY: dec("45")}

	if err := core.Classify(chart, &item, "A", "A.20", "A.10.04"); err == nil {
		t.Fatal("expected inconsistent chain to be rejected")
	}
	if item.IsMapped {
		t.Fatal("failed classification must not mark the item mapped")
	}

	item.SuggestedMajorHeadCode = "A"
	item.SuggestedMinorHeadCode = "A.10"
	item.SuggestedGroupingCode = "A.10.04"
	item.SuggestionConfidence = 0.92
	if err := core.AcceptSuggestion(chart, &item); err != nil {
		t.Fatalf("accepting a valid suggestion: %v", err)
	}
	if !item.IsMapped || item.GroupingCode != "A.10.04" {
		t.Errorf("suggestion not committed: %+v", item)
	}
	if item.SuggestedGroupingCode != "" || item.SuggestionConfidence != 0 {
		t.Error("committed suggestion fields must be cleared")
	}
}
