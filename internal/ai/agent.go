package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
	"github.com/shopspring/decimal"

	"finstat/internal/core"
)

// SuggestRequest asks for a classification of one unmapped ledger.
type SuggestRequest struct {
	LedgerName     string
	ClosingBalance decimal.Decimal
}

// BatchResult carries per-ledger outcomes of a batch suggestion run.
// Suggestions and Errors are disjoint by ledger name.
type BatchResult struct {
	Suggestions []core.MappingSuggestion `json:"suggestions"`
	Errors      map[string]string        `json:"errors,omitempty"`
}

type SuggestionService interface {
	SuggestMapping(ctx context.Context, chart *core.Chart, req SuggestRequest, examples []core.ClassificationExample) (*core.MappingSuggestion, error)
	SuggestMappingBatch(ctx context.Context, chart *core.Chart, reqs []SuggestRequest, examples []core.ClassificationExample) (*BatchResult, error)
}

type Agent struct {
	client *openai.Client
	model  shared.ResponsesModel
}

// NewAgent builds the suggestion agent. With an empty API key the agent
// still serves corpus matches but reports ErrModelUnavailable for
// anything that needs the model.
func NewAgent(apiKey string) *Agent {
	a := &Agent{model: shared.ResponsesModel(shared.ChatModelGPT4o)}
	if apiKey != "" {
		client := openai.NewClient(option.WithAPIKey(apiKey))
		a.client = &client
	}
	return a
}

// suggestionPayload is the structured output contract for one ledger.
type suggestionPayload struct {
	LedgerName    string  `json:"ledger_name" jsonschema_description:"The ledger name exactly as provided in the input"`
	MajorHeadCode string  `json:"major_head_code" jsonschema_description:"The major head code from the chart (e.g. 'A')"`
	MinorHeadCode string  `json:"minor_head_code" jsonschema_description:"The minor head code from the chart (e.g. 'A.110')"`
	GroupingCode  string  `json:"grouping_code" jsonschema_description:"The grouping code from the chart (e.g. 'A.110.01')"`
	Confidence    float64 `json:"confidence" jsonschema_description:"Confidence score between 0.0 and 1.0"`
	Rationale     string  `json:"rationale" jsonschema_description:"One sentence explaining the classification"`
}

// SuggestMapping classifies a single ledger. A strong match against the
// committed-mapping corpus short-circuits the model call entirely.
func (a *Agent) SuggestMapping(ctx context.Context, chart *core.Chart, req SuggestRequest, examples []core.ClassificationExample) (*core.MappingSuggestion, error) {
	if s := corpusSuggestion(chart, req.LedgerName, examples); s != nil {
		return s, nil
	}
	if a.client == nil {
		return nil, core.ErrModelUnavailable
	}

	prompt, err := buildPrompt(chart, examples, []SuggestRequest{req})
	if err != nil {
		return nil, err
	}
	raw, err := a.call(ctx, prompt, "ledger_classification", suggestionSchema())
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	var payload suggestionPayload
	if err := extractObject(raw, &payload); err != nil {
		return nil, err
	}
	payload.LedgerName = req.LedgerName
	return finalizeSuggestion(chart, req, payload)
}

// finalizeSuggestion turns a parsed payload into a validated suggestion,
// rejecting inconsistent chains and balance-sign contradictions.
func finalizeSuggestion(chart *core.Chart, req SuggestRequest, p suggestionPayload) (*core.MappingSuggestion, error) {
	if err := chart.ValidateChain(p.MajorHeadCode, p.MinorHeadCode, p.GroupingCode); err != nil {
		return nil, err
	}
	if err := checkSignPrior(chart, req, p.GroupingCode); err != nil {
		return nil, err
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		p.Confidence = 0
	}
	return &core.MappingSuggestion{
		LedgerName:    req.LedgerName,
		MajorHeadCode: p.MajorHeadCode,
		MinorHeadCode: p.MinorHeadCode,
		GroupingCode:  p.GroupingCode,
		Confidence:    p.Confidence,
		Rationale:     p.Rationale,
	}, nil
}

// checkSignPrior rejects suggestions that contradict the balance sign: a
// credit balance cannot be an asset or expense, a debit balance cannot be
// a liability or income.
func checkSignPrior(chart *core.Chart, req SuggestRequest, groupingCode string) error {
	if req.ClosingBalance.IsZero() {
		return nil
	}
	side, ok := chart.SideOf(groupingCode)
	if !ok {
		return nil
	}
	violating := (req.ClosingBalance.IsNegative() && side == core.SideDebit) ||
		(req.ClosingBalance.IsPositive() && side == core.SideCredit)
	if violating {
		res, _ := chart.Resolve(groupingCode)
		return &core.SignPriorViolationError{
			LedgerName:    req.LedgerName,
			Balance:       req.ClosingBalance,
			MajorHeadCode: res.Major.Code,
		}
	}
	return nil
}

func (a *Agent) call(ctx context.Context, prompt, schemaName string, schema map[string]any) (string, error) {
	params := responses.ResponseNewParams{
		Model: a.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:   constant.JSONSchema("json_schema"),
					Name:   schemaName,
					Strict: param.NewOpt(true),
					Schema: schema,
				},
			},
		},
	}
	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}
	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

func suggestionSchema() map[string]any {
	return reflectSchema(suggestionPayload{})
}

func batchSchema() map[string]any {
	return reflectSchema(batchPayload{})
}

// batchPayload wraps the array: strict structured outputs require an
// object at the top level.
type batchPayload struct {
	Suggestions []suggestionPayload `json:"suggestions" jsonschema_description:"One entry per input ledger, in input order"`
}

func reflectSchema(v any) map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		panic(err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		panic(err)
	}
	return schemaMap
}
