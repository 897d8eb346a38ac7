package ai

import (
	"context"
	"errors"
	"time"

	"finstat/internal/core"
)

// batchTimeout bounds one batch model call; the serial fallback carries
// its own per-ledger timeout via the caller's context.
const batchTimeout = 120 * time.Second

// SuggestMappingBatch classifies many ledgers in one model call, with a
// serial per-ledger fallback when the batch call or its payload fails.
// The result always accounts for every request: each ledger ends up in
// Suggestions or in Errors.
func (a *Agent) SuggestMappingBatch(ctx context.Context, chart *core.Chart, reqs []SuggestRequest, examples []core.ClassificationExample) (*BatchResult, error) {
	result := &BatchResult{Errors: make(map[string]string)}

	// Corpus matches never go to the model.
	var pending []SuggestRequest
	for _, r := range reqs {
		if s := corpusSuggestion(chart, r.LedgerName, examples); s != nil {
			result.Suggestions = append(result.Suggestions, *s)
			continue
		}
		pending = append(pending, r)
	}
	if len(pending) == 0 {
		applyPatternConsistency(result.Suggestions)
		return result, nil
	}
	if a.client == nil {
		return nil, core.ErrModelUnavailable
	}

	payloads, err := a.batchCall(ctx, chart, pending, examples)
	if err != nil {
		// Degrade to one call per ledger so a single bad payload cannot
		// sink the whole batch.
		a.suggestSerially(ctx, chart, pending, examples, result)
	} else {
		a.mergeBatch(ctx, chart, pending, examples, payloads, result)
	}

	applyPatternConsistency(result.Suggestions)
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

func (a *Agent) batchCall(ctx context.Context, chart *core.Chart, reqs []SuggestRequest, examples []core.ClassificationExample) ([]suggestionPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	prompt, err := buildPrompt(chart, examples, reqs)
	if err != nil {
		return nil, err
	}
	raw, err := a.call(ctx, prompt, "ledger_classification_batch", batchSchema())
	if err != nil {
		return nil, err
	}
	var wrapped batchPayload
	if err := extractObject(raw, &wrapped); err == nil && len(wrapped.Suggestions) > 0 {
		return wrapped.Suggestions, nil
	}
	// Some replies come back as a bare array.
	var payloads []suggestionPayload
	if err := extractArray(raw, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}

// mergeBatch matches payloads to requests by normalized ledger name and
// finalizes each one. Requests the batch reply missed fall back to
// serial calls.
func (a *Agent) mergeBatch(ctx context.Context, chart *core.Chart, reqs []SuggestRequest, examples []core.ClassificationExample, payloads []suggestionPayload, result *BatchResult) {
	byName := make(map[string]suggestionPayload, len(payloads))
	for _, p := range payloads {
		byName[core.NormalizeLedgerName(p.LedgerName)] = p
	}

	var missed []SuggestRequest
	for _, r := range reqs {
		p, ok := byName[core.NormalizeLedgerName(r.LedgerName)]
		if !ok {
			missed = append(missed, r)
			continue
		}
		p.LedgerName = r.LedgerName
		s, err := finalizeSuggestion(chart, r, p)
		if err != nil {
			result.Errors[r.LedgerName] = err.Error()
			continue
		}
		result.Suggestions = append(result.Suggestions, *s)
	}
	a.suggestSerially(ctx, chart, missed, examples, result)
}

func (a *Agent) suggestSerially(ctx context.Context, chart *core.Chart, reqs []SuggestRequest, examples []core.ClassificationExample, result *BatchResult) {
	for _, r := range reqs {
		s, err := a.SuggestMapping(ctx, chart, r, examples)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				result.Errors[r.LedgerName] = "suggestion timed out"
				continue
			}
			result.Errors[r.LedgerName] = err.Error()
			continue
		}
		result.Suggestions = append(result.Suggestions, *s)
	}
}

// applyPatternConsistency forces ledgers sharing a leading name token to
// one classification: the highest-confidence member of the group wins and
// the rest follow.
func applyPatternConsistency(suggestions []core.MappingSuggestion) {
	groups := make(map[string][]int)
	for i := range suggestions {
		key := firstToken(suggestions[i].LedgerName)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], i)
	}
	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		leader := idxs[0]
		for _, i := range idxs[1:] {
			if suggestions[i].Confidence > suggestions[leader].Confidence {
				leader = i
			}
		}
		for _, i := range idxs {
			if i == leader {
				continue
			}
			if suggestions[i].GroupingCode == suggestions[leader].GroupingCode {
				continue
			}
			suggestions[i].MajorHeadCode = suggestions[leader].MajorHeadCode
			suggestions[i].MinorHeadCode = suggestions[leader].MinorHeadCode
			suggestions[i].GroupingCode = suggestions[leader].GroupingCode
			suggestions[i].Confidence = suggestions[leader].Confidence
			suggestions[i].Rationale = "aligned with " + suggestions[leader].LedgerName
		}
	}
}
