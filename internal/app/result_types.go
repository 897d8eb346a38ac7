package app

import "finstat/internal/core"

// EntityResult is returned by entity lifecycle operations.
type EntityResult struct {
	Entity *core.Entity
}

// EntityListResult is returned by ListEntities.
type EntityListResult struct {
	Entities []core.Entity
}

// SuggestionResult is returned by SuggestMapping.
type SuggestionResult struct {
	Suggestion *core.MappingSuggestion
}

// BatchSuggestionResult is returned by SuggestMappingBatch. Errors maps
// ledger names the run could not classify to the reason.
type BatchSuggestionResult struct {
	Suggestions []core.MappingSuggestion
	Errors      map[string]string
}

// ValidationResult is returned by Validate.
type ValidationResult struct {
	Findings []core.Finding
	// Counts holds the number of findings per severity.
	Counts map[core.Severity]int
	// Blocking is true while any finding is severe enough to stop
	// finalization.
	Blocking bool
}

// StatementsResult is returned by GetStatements.
type StatementsResult struct {
	Statements *core.Statements
}
