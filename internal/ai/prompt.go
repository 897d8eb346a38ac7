package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"finstat/internal/core"
)

// buildPrompt assembles the classification prompt: the balance-sign rule,
// the chart, committed examples, and the ledgers to classify. The same
// prompt body serves single and batch calls; batch calls add consistency
// rules.
func buildPrompt(chart *core.Chart, examples []core.ClassificationExample, reqs []SuggestRequest) (string, error) {
	chartJSON, err := json.Marshal(chart.Masters())
	if err != nil {
		return "", fmt.Errorf("marshal chart: %w", err)
	}

	var b strings.Builder
	b.WriteString(`You are an expert in Indian statutory financial statements.
Classify each trial balance ledger into the three-level chart of accounts below.
Rules:
1. Use ONLY codes present in the chart, and keep the chain consistent: the grouping must belong to the minor head, the minor head to the major head.
2. The closing balance sign is a strong prior: a NEGATIVE balance is a credit (liability, equity or income), a POSITIVE balance is a debit (asset or expense).
3. Prefer the most specific grouping that fits the ledger name.
4. Provide a confidence score (0.0-1.0) and a one-sentence rationale per ledger.

Chart of accounts:
`)
	b.Write(chartJSON)

	if len(examples) > 0 {
		exJSON, err := json.Marshal(examples)
		if err != nil {
			return "", fmt.Errorf("marshal examples: %w", err)
		}
		b.WriteString("\n\nPreviously committed classifications (follow these when a ledger matches):\n")
		b.Write(exJSON)
	}

	if len(reqs) > 1 {
		b.WriteString(`

Batch consistency rules:
- Recognise naming patterns: ledgers sharing a common prefix or party name usually belong together.
- Treat all ledgers of one pattern uniformly. Example: if "ALTERIA CAPITAL - TERM LOAN" is a long-term borrowing, then "ALTERIA CAPITAL - INTEREST ACCRUED" relates to the same lender and must be classified consistently with it.
- Return exactly one entry per input ledger, in input order.`)
	}

	b.WriteString("\n\nLedgers to classify:\n")
	for _, r := range reqs {
		fmt.Fprintf(&b, "- %s (closing balance %s)\n", r.LedgerName, r.ClosingBalance.StringFixed(2))
	}
	return b.String(), nil
}
