package ai

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"finstat/internal/core"
)

// extractObject pulls the first JSON object out of a model reply.
func extractObject(raw string, out any) error {
	return extractPayload(raw, out, '{', '}')
}

// extractArray pulls the first JSON array out of a model reply.
func extractArray(raw string, out any) error {
	return extractPayload(raw, out, '[', ']')
}

// extractPayload unmarshals the first JSON value of the wanted shape into
// out. Models occasionally wrap the payload in markdown fences or prose;
// the ladder is: strip fences, cut the outermost balanced fragment, plain
// unmarshal, then a repair pass.
func extractPayload(raw string, out any, open, closing byte) error {
	cleaned := stripFences(raw)
	fragment := balancedFragment(cleaned, open, closing)
	if fragment == "" {
		return &core.MalformedSuggestionError{Raw: raw, Reason: "no JSON payload found"}
	}

	if err := json.Unmarshal([]byte(fragment), out); err == nil {
		return nil
	}
	repaired, err := jsonrepair.RepairJSON(fragment)
	if err != nil {
		return &core.MalformedSuggestionError{Raw: raw, Reason: "repair failed: " + err.Error()}
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return &core.MalformedSuggestionError{Raw: raw, Reason: "unmarshal after repair: " + err.Error()}
	}
	return nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// balancedFragment returns the substring from the first opening bracket
// to its matching close, tracking strings and escapes.
func balancedFragment(s string, open, closing byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	// Unterminated payload: hand the tail to the repair pass.
	return s[start:]
}
