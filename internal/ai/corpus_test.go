package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"finstat/internal/core"
)

func testChart(t *testing.T) *core.Chart {
	t.Helper()
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatal(err)
	}
	return chart
}

var corpusExamples = []core.ClassificationExample{
	{LedgerName: "HDFC Bank Current Account", MajorHeadCode: "A", MinorHeadCode: "A.120", GroupingCode: "A.120.02"},
	{LedgerName: "Salaries and Wages", MajorHeadCode: "C", MinorHeadCode: "C.60", GroupingCode: "C.60.01"},
	{LedgerName: "Electricity Charges", MajorHeadCode: "C", MinorHeadCode: "C.90", GroupingCode: "C.90.01"},
}

func TestCorpusSuggestion_ExactMatch(t *testing.T) {
	chart := testChart(t)
	s := corpusSuggestion(chart, "  hdfc bank current account ", corpusExamples)
	if s == nil {
		t.Fatal("expected a corpus match")
	}
	if s.GroupingCode != "A.120.02" || s.Confidence != 1.0 {
		t.Errorf("unexpected suggestion: %+v", s)
	}
}

func TestCorpusSuggestion_BelowThreshold(t *testing.T) {
	chart := testChart(t)
	if s := corpusSuggestion(chart, "Travelling Expenses", corpusExamples); s != nil {
		t.Errorf("unrelated name must not match the corpus, got %+v", s)
	}
}

func TestCorpusSuggestion_StaleChainRejected(t *testing.T) {
	chart := testChart(t)
	stale := []core.ClassificationExample{
		{LedgerName: "Old Scheme Ledger", MajorHeadCode: "A", MinorHeadCode: "A.999", GroupingCode: "A.999.01"},
	}
	if s := corpusSuggestion(chart, "Old Scheme Ledger", stale); s != nil {
		t.Errorf("a chain missing from the chart must not be suggested, got %+v", s)
	}
}

func TestSuggestMapping_UnconfiguredModel(t *testing.T) {
	chart := testChart(t)
	agent := NewAgent("")

	// Corpus hits still work without a model.
	s, err := agent.SuggestMapping(context.Background(), chart,
		SuggestRequest{LedgerName: "Salaries and Wages", ClosingBalance: decimal.NewFromInt(100)}, corpusExamples)
	if err != nil {
		t.Fatalf("corpus path should not need the model: %v", err)
	}
	if s.GroupingCode != "C.60.01" {
		t.Errorf("grouping = %q, want C.60.01", s.GroupingCode)
	}

	_, err = agent.SuggestMapping(context.Background(), chart,
		SuggestRequest{LedgerName: "Unseen Ledger", ClosingBalance: decimal.NewFromInt(100)}, corpusExamples)
	if !errors.Is(err, core.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestCheckSignPrior(t *testing.T) {
	chart := testChart(t)
	tests := []struct {
		name      string
		balance   string
		grouping  string
		expectErr bool
	}{
		{"credit balance as liability", "-500", "B.30.01", false},
		{"credit balance as income", "-500", "C.10.01", false},
		{"credit balance as asset", "-500", "A.110.01", true},
		{"debit balance as expense", "500", "C.90.02", false},
		{"debit balance as liability", "500", "B.80.02", true},
		{"zero balance is unconstrained", "0", "A.110.01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bal, _ := decimal.NewFromString(tt.balance)
			err := checkSignPrior(chart, SuggestRequest{LedgerName: "L", ClosingBalance: bal}, tt.grouping)
			if tt.expectErr {
				var v *core.SignPriorViolationError
				if !errors.As(err, &v) {
					t.Fatalf("expected *SignPriorViolationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyPatternConsistency(t *testing.T) {
	suggestions := []core.MappingSuggestion{
		{LedgerName: "ALTERIA CAPITAL - TERM LOAN", MajorHeadCode: "B", MinorHeadCode: "B.30", GroupingCode: "B.30.02", Confidence: 0.95},
		{LedgerName: "ALTERIA CAPITAL - TERM LOAN II", MajorHeadCode: "B", MinorHeadCode: "B.70", GroupingCode: "B.70.03", Confidence: 0.55},
		{LedgerName: "Rent - Warehouse", MajorHeadCode: "C", MinorHeadCode: "C.90", GroupingCode: "C.90.02", Confidence: 0.9},
	}
	applyPatternConsistency(suggestions)

	if suggestions[1].GroupingCode != "B.30.02" {
		t.Errorf("low-confidence member must follow the group leader, got %q", suggestions[1].GroupingCode)
	}
	if suggestions[1].Rationale != "aligned with ALTERIA CAPITAL - TERM LOAN" {
		t.Errorf("unexpected rationale: %q", suggestions[1].Rationale)
	}
	if suggestions[0].GroupingCode != "B.30.02" || suggestions[2].GroupingCode != "C.90.02" {
		t.Error("leader and unrelated ledgers must be untouched")
	}
}

func TestSuggestMappingBatch_CorpusOnly(t *testing.T) {
	chart := testChart(t)
	agent := NewAgent("")

	reqs := []SuggestRequest{
		{LedgerName: "HDFC Bank Current Account", ClosingBalance: decimal.NewFromInt(100)},
		{LedgerName: "Electricity Charges", ClosingBalance: decimal.NewFromInt(50)},
	}
	result, err := agent.SuggestMappingBatch(context.Background(), chart, reqs, corpusExamples)
	if err != nil {
		t.Fatalf("all-corpus batch should not need the model: %v", err)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(result.Suggestions))
	}

	reqs = append(reqs, SuggestRequest{LedgerName: "Unseen Ledger"})
	if _, err := agent.SuggestMappingBatch(context.Background(), chart, reqs, corpusExamples); !errors.Is(err, core.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}
