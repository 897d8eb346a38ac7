package app

import (
	"context"

	"finstat/internal/core"
)

// ApplicationService is the single interface all adapters (CLI, Web)
// call. It decouples presentation from business logic. Implementations
// must contain no fmt.Println, no ANSI codes, and no display logic of any
// kind.
type ApplicationService interface {
	// CreateEntity registers a reporting entity for a financial year.
	CreateEntity(ctx context.Context, req CreateEntityRequest) (*EntityResult, error)

	// GetEntity returns one entity with its trial balance and schedules.
	GetEntity(ctx context.Context, id string) (*EntityResult, error)

	// ListEntities returns all live entities, most recently touched first.
	ListEntities(ctx context.Context) (*EntityListResult, error)

	// DeleteEntity soft-deletes an entity. Its committed classifications
	// stop feeding the example corpus.
	DeleteEntity(ctx context.Context, id string) error

	// ImportTrialBalance replaces the entity's trial balance. The rows
	// must net to zero within tolerance.
	ImportTrialBalance(ctx context.Context, req ImportTrialBalanceRequest) (*EntityResult, error)

	// SaveSchedules replaces the entity's schedule data.
	SaveSchedules(ctx context.Context, id string, schedules core.ScheduleData) (*EntityResult, error)

	// ClassifyLedger commits a classification chain for one ledger.
	ClassifyLedger(ctx context.Context, req ClassifyLedgerRequest) (*EntityResult, error)

	// SuggestMapping proposes a classification for one unmapped ledger
	// and records it as the ledger's pending suggestion.
	SuggestMapping(ctx context.Context, entityID, ledgerID string) (*SuggestionResult, error)

	// SuggestMappingBatch proposes classifications for every unmapped
	// ledger of the entity in one model round-trip, degrading to serial
	// calls per ledger when the batch payload is unusable.
	SuggestMappingBatch(ctx context.Context, entityID string) (*BatchSuggestionResult, error)

	// Validate runs the pre-finalization checks without deriving the
	// full statement set.
	Validate(ctx context.Context, id string) (*ValidationResult, error)

	// GetStatements derives the balance sheet, profit and loss, cash
	// flow and ratios for the entity.
	GetStatements(ctx context.Context, id string) (*StatementsResult, error)

	// Finalize locks the entity. It fails while critical findings or
	// unexplained ratio movements remain.
	Finalize(ctx context.Context, id string) error

	// Chart returns the chart of accounts the engine classifies against.
	Chart() core.Masters
}
