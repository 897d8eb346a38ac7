package ai

import (
	"strings"
	"unicode"

	"finstat/internal/core"
)

// corpusMatchThreshold is the token-overlap score at which a committed
// example is trusted without consulting the model.
const corpusMatchThreshold = 0.85

// corpusSuggestion answers from the committed-mapping corpus when a
// ledger name matches a previous classification closely enough. Returns
// nil when nothing clears the threshold or the matched chain no longer
// exists in the chart.
func corpusSuggestion(chart *core.Chart, ledgerName string, examples []core.ClassificationExample) *core.MappingSuggestion {
	best, score := bestCorpusMatch(ledgerName, examples)
	if best == nil || score < corpusMatchThreshold {
		return nil
	}
	if err := chart.ValidateChain(best.MajorHeadCode, best.MinorHeadCode, best.GroupingCode); err != nil {
		return nil
	}
	return &core.MappingSuggestion{
		LedgerName:    ledgerName,
		MajorHeadCode: best.MajorHeadCode,
		MinorHeadCode: best.MinorHeadCode,
		GroupingCode:  best.GroupingCode,
		Confidence:    score,
		Rationale:     "matches previously committed ledger " + strings.TrimSpace(best.LedgerName),
	}
}

// bestCorpusMatch returns the example with the highest name similarity.
// An exact match after normalization scores 1.0; otherwise the score is
// the Jaccard overlap of the name tokens.
func bestCorpusMatch(ledgerName string, examples []core.ClassificationExample) (*core.ClassificationExample, float64) {
	target := core.NormalizeLedgerName(ledgerName)
	targetTokens := tokenize(target)
	var best *core.ClassificationExample
	var bestScore float64
	for i := range examples {
		ex := &examples[i]
		if core.NormalizeLedgerName(ex.LedgerName) == target {
			return ex, 1.0
		}
		score := jaccard(targetTokens, tokenize(core.NormalizeLedgerName(ex.LedgerName)))
		if score > bestScore {
			best, bestScore = ex, score
		}
	}
	return best, bestScore
}

func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[t] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// firstToken is the pattern key for batch consistency: ledgers opening
// with the same word usually belong to the same party or scheme.
func firstToken(name string) string {
	for _, t := range strings.FieldsFunc(core.NormalizeLedgerName(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		return t
	}
	return ""
}
