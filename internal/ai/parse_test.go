package ai

import (
	"errors"
	"testing"

	"finstat/internal/core"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCode  string
		expectErr bool
	}{
		{
			name:     "clean JSON",
			raw:      `{"ledger_name":"Rent","grouping_code":"C.90.02","confidence":0.9}`,
			wantCode: "C.90.02",
		},
		{
			name:     "fenced with language tag",
			raw:      "```json\n{\"ledger_name\":\"Rent\",\"grouping_code\":\"C.90.02\"}\n```",
			wantCode: "C.90.02",
		},
		{
			name:     "prose around the payload",
			raw:      `Sure, here is the classification: {"ledger_name":"Rent","grouping_code":"C.90.02"} Hope that helps!`,
			wantCode: "C.90.02",
		},
		{
			name:     "single quotes need repair",
			raw:      `{'ledger_name': 'Rent', 'grouping_code': 'C.90.02'}`,
			wantCode: "C.90.02",
		},
		{
			name:     "truncated payload repaired",
			raw:      `{"ledger_name":"Rent","grouping_code":"C.90.02"`,
			wantCode: "C.90.02",
		},
		{
			name:      "no JSON at all",
			raw:       "I could not classify this ledger.",
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p suggestionPayload
			err := extractObject(tt.raw, &p)
			if tt.expectErr {
				var malformed *core.MalformedSuggestionError
				if !errors.As(err, &malformed) {
					t.Fatalf("expected *MalformedSuggestionError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.GroupingCode != tt.wantCode {
				t.Errorf("grouping = %q, want %q", p.GroupingCode, tt.wantCode)
			}
		})
	}
}

func TestExtractArray(t *testing.T) {
	raw := "Results:\n```\n[{\"ledger_name\":\"A\"},{\"ledger_name\":\"B\"}]\n```"
	var payloads []suggestionPayload
	if err := extractArray(raw, &payloads); err != nil {
		t.Fatal(err)
	}
	if len(payloads) != 2 || payloads[1].LedgerName != "B" {
		t.Errorf("unexpected payloads: %+v", payloads)
	}
}

func TestBalancedFragment_NestedAndStrings(t *testing.T) {
	raw := `{"a":{"b":"close brace in string }"},"c":1} trailing`
	got := balancedFragment(raw, '{', '}')
	want := `{"a":{"b":"close brace in string }"},"c":1}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
