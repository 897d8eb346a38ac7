package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"finstat/internal/ai"
	"finstat/internal/core"
)

// Smoke test for the suggestion agent against the live model: classifies
// a handful of typical ledgers and prints the proposed chains.
func main() {
	_ = godotenv.Load() // Load .env if present

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		log.Fatalf("chart: %v", err)
	}
	agent := ai.NewAgent(apiKey)
	ctx := context.Background()

	examples := []core.ClassificationExample{
		{LedgerName: "HDFC Bank Current Account", MajorHeadCode: "A", MinorHeadCode: "A.120", GroupingCode: "A.120.02"},
		{LedgerName: "Salaries and Wages", MajorHeadCode: "C", MinorHeadCode: "C.60", GroupingCode: "C.60.01"},
	}

	reqs := []ai.SuggestRequest{
		{LedgerName: "ALTERIA CAPITAL - TERM LOAN", ClosingBalance: decimal.NewFromInt(-2500000)},
		{LedgerName: "ALTERIA CAPITAL - INTEREST ACCRUED", ClosingBalance: decimal.NewFromInt(-42000)},
		{LedgerName: "Godrej Office Almirah", ClosingBalance: decimal.NewFromInt(45000)},
		{LedgerName: "GST Input Credit", ClosingBalance: decimal.NewFromInt(130000)},
		{LedgerName: "hdfc bank current account", ClosingBalance: decimal.NewFromInt(800000)},
	}

	result, err := agent.SuggestMappingBatch(ctx, chart, reqs, examples)
	if err != nil {
		log.Fatalf("batch suggestion failed: %v", err)
	}
	for _, s := range result.Suggestions {
		fmt.Printf("%-40s -> %s / %s / %s (%.2f) %s\n",
			s.LedgerName, s.MajorHeadCode, s.MinorHeadCode, s.GroupingCode, s.Confidence, s.Rationale)
	}
	for name, msg := range result.Errors {
		fmt.Printf("%-40s -> ERROR: %s\n", name, msg)
	}
}
