// Package parser turns raw oracle replies into typed verdicts. Models wrap
// JSON in prose or code fences often enough that parsing is an ordered
// chain of strategies, first success wins, with a neutral verdict as the
// terminal fallback.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/outline-tools/outline-critic/internal/models"
)

const defaultIssues = "no issues"

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	jsonObjectRe = regexp.MustCompile(`(?s)(\{.*\})`)
)

// ParseVerdict extracts a verdict for criterion from raw oracle output.
// It never fails: unparsable replies become a neutral verdict with a
// descriptive issues string.
func ParseVerdict(raw string, criterion models.Criterion) models.CriteriaResult {
	obj, ok := extractObject(raw)
	if !ok {
		return models.CriteriaResult{
			Criteria:  criterion,
			HasIssues: false,
			Issues:    "failed to parse the evaluation response",
		}
	}

	return models.CriteriaResult{
		Criteria:  criterion,
		HasIssues: coerceHasIssues(obj["has_issues"]),
		Issues:    coerceIssues(obj["issues"]),
	}
}

// extractObject runs the strategy chain: whole reply as JSON, then a
// ```json fenced block, then the widest brace-delimited substring.
func extractObject(raw string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, true
	}

	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &obj); err == nil {
			return obj, true
		}
	}

	if m := jsonObjectRe.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &obj); err == nil {
			return obj, true
		}
	}

	return nil, false
}

func coerceHasIssues(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true")
	default:
		return false
	}
}

func coerceIssues(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return defaultIssues
	}
	return s
}
