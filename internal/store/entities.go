package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finstat/internal/core"
)

// EntityStore persists reporting entities with their trial balances and
// schedules as JSONB documents.
type EntityStore interface {
	CreateEntity(ctx context.Context, e *core.Entity) error
	GetEntity(ctx context.Context, id string) (*core.Entity, error)
	ListEntities(ctx context.Context) ([]core.Entity, error)
	SoftDeleteEntity(ctx context.Context, id string) error

	SaveTrialBalance(ctx context.Context, id string, items []core.TrialBalanceItem) error
	SaveSchedules(ctx context.Context, id string, schedules core.ScheduleData) error
	SaveSuggestions(ctx context.Context, id string, suggestions []core.MappingSuggestion) error
	CommitClassification(ctx context.Context, id, ledgerID, majorCode, minorCode, groupingCode string) error
	Finalize(ctx context.Context, id string) error

	GlobalExamples(ctx context.Context, limit int) ([]core.ClassificationExample, error)
}

type entityStore struct {
	pool  *pgxpool.Pool
	chart *core.Chart
}

// NewEntityStore constructs an EntityStore backed by PostgreSQL. The
// chart guards classification writes and finalization checks.
func NewEntityStore(pool *pgxpool.Pool, chart *core.Chart) EntityStore {
	return &entityStore{pool: pool, chart: chart}
}

func (s *entityStore) CreateEntity(ctx context.Context, e *core.Entity) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	if e.TrialBalance == nil {
		e.TrialBalance = []core.TrialBalanceItem{}
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO entities (id, name, type, pan, cin, fy_start, fy_end, trial_balance, schedules, is_finalized, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, false, $10, $10)`,
		e.ID, e.Name, e.Type, e.PAN, e.CIN, e.FYStart, e.FYEnd, e.TrialBalance, e.Schedules, now,
	)
	if err != nil {
		return fmt.Errorf("insert entity: %w", err)
	}
	return nil
}

const entityColumns = `id, name, type, pan, cin, fy_start, fy_end, trial_balance, schedules, is_finalized, is_deleted, created_at, updated_at`

func scanEntity(row pgx.Row) (*core.Entity, error) {
	e := &core.Entity{}
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.PAN, &e.CIN, &e.FYStart, &e.FYEnd,
		&e.TrialBalance, &e.Schedules, &e.IsFinalized, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entityStore) GetEntity(ctx context.Context, id string) (*core.Entity, error) {
	e, err := scanEntity(s.pool.QueryRow(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE id = $1 AND is_deleted = false`, id))
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", id, err)
	}
	return e, nil
}

func (s *entityStore) ListEntities(ctx context.Context) ([]core.Entity, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE is_deleted = false
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()

	var entities []core.Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		entities = append(entities, *e)
	}
	return entities, rows.Err()
}

func (s *entityStore) SoftDeleteEntity(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE entities SET is_deleted = true, updated_at = $2
		WHERE id = $1 AND is_deleted = false`, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("delete entity %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entity %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// SaveTrialBalance replaces the entity's trial balance. The balance must
// net to zero and the entity must not be finalized.
func (s *entityStore) SaveTrialBalance(ctx context.Context, id string, items []core.TrialBalanceItem) error {
	if err := core.ValidateTrialBalance(items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	return s.updateOpen(ctx, id, func(e *core.Entity) error {
		e.TrialBalance = items
		return nil
	})
}

func (s *entityStore) SaveSchedules(ctx context.Context, id string, schedules core.ScheduleData) error {
	return s.updateOpen(ctx, id, func(e *core.Entity) error {
		e.Schedules = schedules
		return nil
	})
}

// SaveSuggestions records pending AI suggestions against their ledgers,
// matched by normalized name. Ledgers the batch did not cover keep their
// previous suggestion.
func (s *entityStore) SaveSuggestions(ctx context.Context, id string, suggestions []core.MappingSuggestion) error {
	byName := make(map[string]core.MappingSuggestion, len(suggestions))
	for _, sg := range suggestions {
		byName[core.NormalizeLedgerName(sg.LedgerName)] = sg
	}
	return s.updateOpen(ctx, id, func(e *core.Entity) error {
		for i := range e.TrialBalance {
			item := &e.TrialBalance[i]
			sg, ok := byName[core.NormalizeLedgerName(item.LedgerName)]
			if !ok || item.IsMapped {
				continue
			}
			item.SuggestedMajorHeadCode = sg.MajorHeadCode
			item.SuggestedMinorHeadCode = sg.MinorHeadCode
			item.SuggestedGroupingCode = sg.GroupingCode
			item.SuggestionConfidence = sg.Confidence
		}
		return nil
	})
}

// CommitClassification validates and writes one ledger's classification
// under a row lock, so concurrent commits cannot lose updates.
func (s *entityStore) CommitClassification(ctx context.Context, id, ledgerID, majorCode, minorCode, groupingCode string) error {
	return s.updateOpen(ctx, id, func(e *core.Entity) error {
		for i := range e.TrialBalance {
			if e.TrialBalance[i].ID == ledgerID {
				return core.Classify(s.chart, &e.TrialBalance[i], majorCode, minorCode, groupingCode)
			}
		}
		return fmt.Errorf("ledger %s: %w", ledgerID, pgx.ErrNoRows)
	})
}

// Finalize locks the entity after a full derivation run: critical
// findings or unexplained significant ratio movements keep it open.
func (s *entityStore) Finalize(ctx context.Context, id string) error {
	return s.updateOpen(ctx, id, func(e *core.Entity) error {
		stmts, err := core.DeriveStatements(s.chart, e)
		if err != nil {
			return err
		}
		if core.HasBlocking(stmts.Findings) {
			return fmt.Errorf("entity %s has critical findings", id)
		}
		if stmts.Ratios.HasBlockers() {
			return fmt.Errorf("entity %s has unexplained ratio movements", id)
		}
		e.IsFinalized = true
		return nil
	})
}

// updateOpen loads the entity under FOR UPDATE, applies fn and writes the
// result back. Finalized entities reject every mutation.
func (s *entityStore) updateOpen(ctx context.Context, id string, fn func(*core.Entity) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	e, err := scanEntity(tx.QueryRow(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE id = $1 AND is_deleted = false
		FOR UPDATE`, id))
	if err != nil {
		return fmt.Errorf("entity %s: %w", id, err)
	}
	if e.IsFinalized {
		return core.ErrEntityFinalized
	}
	if err := fn(e); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE entities
		SET trial_balance = $2, schedules = $3, is_finalized = $4, updated_at = $5
		WHERE id = $1`,
		id, e.TrialBalance, e.Schedules, e.IsFinalized, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update entity %s: %w", id, err)
	}
	return tx.Commit(ctx)
}
