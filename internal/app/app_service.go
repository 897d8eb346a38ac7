package app

import (
	"context"
	"fmt"

	"finstat/internal/ai"
	"finstat/internal/core"
	"finstat/internal/store"
)

type appService struct {
	store   store.EntityStore
	suggest ai.SuggestionService
	chart   *core.Chart
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(entities store.EntityStore, suggest ai.SuggestionService, chart *core.Chart) ApplicationService {
	return &appService{store: entities, suggest: suggest, chart: chart}
}

func (s *appService) CreateEntity(ctx context.Context, req CreateEntityRequest) (*EntityResult, error) {
	entityType := core.EntityType(req.Type)
	switch entityType {
	case core.EntityCompany, core.EntityLLP, core.EntityNonCorporate:
	default:
		return nil, fmt.Errorf("unknown entity type %q", req.Type)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("entity name is required")
	}
	if !req.FYEnd.After(req.FYStart) {
		return nil, fmt.Errorf("financial year end must follow its start")
	}
	e := &core.Entity{
		Name:    req.Name,
		Type:    entityType,
		PAN:     req.PAN,
		CIN:     req.CIN,
		FYStart: req.FYStart,
		FYEnd:   req.FYEnd,
	}
	if err := s.store.CreateEntity(ctx, e); err != nil {
		return nil, err
	}
	return &EntityResult{Entity: e}, nil
}

func (s *appService) GetEntity(ctx context.Context, id string) (*EntityResult, error) {
	e, err := s.store.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	return &EntityResult{Entity: e}, nil
}

func (s *appService) ListEntities(ctx context.Context) (*EntityListResult, error) {
	entities, err := s.store.ListEntities(ctx)
	if err != nil {
		return nil, err
	}
	return &EntityListResult{Entities: entities}, nil
}

func (s *appService) DeleteEntity(ctx context.Context, id string) error {
	return s.store.SoftDeleteEntity(ctx, id)
}

func (s *appService) ImportTrialBalance(ctx context.Context, req ImportTrialBalanceRequest) (*EntityResult, error) {
	items := make([]core.TrialBalanceItem, 0, len(req.Rows))
	for _, r := range req.Rows {
		if r.LedgerName == "" {
			return nil, fmt.Errorf("every trial balance row needs a ledger name")
		}
		items = append(items, core.TrialBalanceItem{
			LedgerName: r.LedgerName,
			ClosingCY:  r.ClosingCY,
			ClosingPY:  r.ClosingPY,
		})
	}
	if err := s.store.SaveTrialBalance(ctx, req.EntityID, items); err != nil {
		return nil, err
	}
	return s.GetEntity(ctx, req.EntityID)
}

func (s *appService) SaveSchedules(ctx context.Context, id string, schedules core.ScheduleData) (*EntityResult, error) {
	if err := s.store.SaveSchedules(ctx, id, schedules); err != nil {
		return nil, err
	}
	return s.GetEntity(ctx, id)
}

func (s *appService) ClassifyLedger(ctx context.Context, req ClassifyLedgerRequest) (*EntityResult, error) {
	err := s.store.CommitClassification(ctx, req.EntityID, req.LedgerID,
		req.MajorHeadCode, req.MinorHeadCode, req.GroupingCode)
	if err != nil {
		return nil, err
	}
	return s.GetEntity(ctx, req.EntityID)
}

func (s *appService) SuggestMapping(ctx context.Context, entityID, ledgerID string) (*SuggestionResult, error) {
	e, err := s.store.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	var target *core.TrialBalanceItem
	for i := range e.TrialBalance {
		if e.TrialBalance[i].ID == ledgerID {
			target = &e.TrialBalance[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("ledger %s not found in entity %s", ledgerID, entityID)
	}

	examples, err := s.store.GlobalExamples(ctx, 0)
	if err != nil {
		return nil, err
	}
	suggestion, err := s.suggest.SuggestMapping(ctx, s.chart, ai.SuggestRequest{
		LedgerName:     target.LedgerName,
		ClosingBalance: target.ClosingCY,
	}, examples)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveSuggestions(ctx, entityID, []core.MappingSuggestion{*suggestion}); err != nil {
		return nil, err
	}
	return &SuggestionResult{Suggestion: suggestion}, nil
}

func (s *appService) SuggestMappingBatch(ctx context.Context, entityID string) (*BatchSuggestionResult, error) {
	e, err := s.store.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	var reqs []ai.SuggestRequest
	for i := range e.TrialBalance {
		item := &e.TrialBalance[i]
		if item.IsMapped {
			continue
		}
		reqs = append(reqs, ai.SuggestRequest{
			LedgerName:     item.LedgerName,
			ClosingBalance: item.ClosingCY,
		})
	}
	if len(reqs) == 0 {
		return &BatchSuggestionResult{}, nil
	}

	examples, err := s.store.GlobalExamples(ctx, 0)
	if err != nil {
		return nil, err
	}
	result, err := s.suggest.SuggestMappingBatch(ctx, s.chart, reqs, examples)
	if err != nil {
		return nil, err
	}
	if len(result.Suggestions) > 0 {
		if err := s.store.SaveSuggestions(ctx, entityID, result.Suggestions); err != nil {
			return nil, err
		}
	}
	return &BatchSuggestionResult{Suggestions: result.Suggestions, Errors: result.Errors}, nil
}

func (s *appService) Validate(ctx context.Context, id string) (*ValidationResult, error) {
	e, err := s.store.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	findings := core.CheckStatements(s.chart, e)
	counts := make(map[core.Severity]int, 3)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return &ValidationResult{
		Findings: findings,
		Counts:   counts,
		Blocking: core.HasBlocking(findings),
	}, nil
}

func (s *appService) GetStatements(ctx context.Context, id string) (*StatementsResult, error) {
	e, err := s.store.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	statements, err := core.DeriveStatements(s.chart, e)
	if err != nil {
		return nil, err
	}
	return &StatementsResult{Statements: statements}, nil
}

func (s *appService) Finalize(ctx context.Context, id string) error {
	return s.store.Finalize(ctx, id)
}

func (s *appService) Chart() core.Masters {
	return s.chart.Masters()
}
