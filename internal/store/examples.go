package store

import (
	"context"
	"fmt"

	"finstat/internal/core"
)

const (
	// exampleScanWindow bounds how many recent entities feed the example
	// corpus on each request.
	exampleScanWindow = 100
	// defaultExampleLimit caps the corpus handed to the model.
	defaultExampleLimit = 1000
)

// GlobalExamples collects committed classifications across the most
// recently updated entities. Names dedupe on their normalized form, first
// occurrence wins, so the freshest mapping for a name is the one kept.
func (s *entityStore) GlobalExamples(ctx context.Context, limit int) ([]core.ClassificationExample, error) {
	if limit <= 0 {
		limit = defaultExampleLimit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT trial_balance
		FROM entities
		WHERE is_deleted = false
		ORDER BY updated_at DESC
		LIMIT $1`, exampleScanWindow)
	if err != nil {
		return nil, fmt.Errorf("scan entities for examples: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	examples := make([]core.ClassificationExample, 0, limit)
	for rows.Next() {
		var items []core.TrialBalanceItem
		if err := rows.Scan(&items); err != nil {
			return nil, fmt.Errorf("scan trial balance: %w", err)
		}
		for i := range items {
			item := &items[i]
			if !item.IsMapped {
				continue
			}
			key := core.NormalizeLedgerName(item.LedgerName)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			examples = append(examples, core.ClassificationExample{
				LedgerName:    item.LedgerName,
				MajorHeadCode: item.MajorHeadCode,
				MinorHeadCode: item.MinorHeadCode,
				GroupingCode:  item.GroupingCode,
			})
			if len(examples) >= limit {
				return examples, nil
			}
		}
	}
	return examples, rows.Err()
}
