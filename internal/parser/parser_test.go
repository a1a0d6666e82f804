package parser

import (
	"testing"

	"github.com/outline-tools/outline-critic/internal/models"
)

func TestParseVerdict_PlainJSON(t *testing.T) {
	verdict := ParseVerdict(`{"has_issues": true, "issues": "duplicate conjunction"}`, models.CriterionConjunctionValidity)

	if verdict.Criteria != models.CriterionConjunctionValidity {
		t.Errorf("unexpected criterion: %s", verdict.Criteria)
	}
	if !verdict.HasIssues {
		t.Error("expected has_issues=true")
	}
	if verdict.Issues != "duplicate conjunction" {
		t.Errorf("unexpected issues: %q", verdict.Issues)
	}
}

func TestParseVerdict_FencedBlock(t *testing.T) {
	raw := "```json\n{\"has_issues\": true, \"issues\": \"x\"}\n```"
	verdict := ParseVerdict(raw, models.CriterionSCQAPresence)

	if !verdict.HasIssues || verdict.Issues != "x" {
		t.Errorf("fenced block not parsed: %+v", verdict)
	}
}

func TestParseVerdict_FencedBlockInsideProse(t *testing.T) {
	raw := "Here is my judgment.\n```json\n{\"has_issues\": false, \"issues\": \"\"}\n```\nLet me know if you need more."
	verdict := ParseVerdict(raw, models.CriterionSCQAPresence)

	if verdict.HasIssues {
		t.Error("expected has_issues=false")
	}
	if verdict.Issues != "no issues" {
		t.Errorf("empty issues should default, got %q", verdict.Issues)
	}
}

func TestParseVerdict_BraceScrape(t *testing.T) {
	raw := `The verdict is as follows: {"has_issues": true, "issues": "missing review"} — end of answer.`
	verdict := ParseVerdict(raw, models.CriterionPreviousDiscussionReview)

	if !verdict.HasIssues || verdict.Issues != "missing review" {
		t.Errorf("brace substring not parsed: %+v", verdict)
	}
}

func TestParseVerdict_Gibberish(t *testing.T) {
	verdict := ParseVerdict("I cannot evaluate this text at all, sorry!", models.CriterionRhetoricalExpression)

	if verdict.HasIssues {
		t.Error("fallback verdict must be neutral")
	}
	if verdict.Issues == "" {
		t.Error("fallback verdict must carry a non-empty reason")
	}
}

func TestParseVerdict_Coercion(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		hasIssues bool
		issues    string
	}{
		{"string true", `{"has_issues": "true", "issues": "a"}`, true, "a"},
		{"string TRUE", `{"has_issues": "TRUE", "issues": "a"}`, true, "a"},
		{"string false", `{"has_issues": "false", "issues": "a"}`, false, "a"},
		{"missing has_issues", `{"issues": "a"}`, false, "a"},
		{"missing issues", `{"has_issues": true}`, true, "no issues"},
		{"empty issues", `{"has_issues": false, "issues": ""}`, false, "no issues"},
		{"numeric has_issues ignored", `{"has_issues": 1, "issues": "a"}`, false, "a"},
		{"empty object", `{}`, false, "no issues"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ParseVerdict(tc.raw, models.CriterionSCQAPresence)
			if verdict.HasIssues != tc.hasIssues {
				t.Errorf("has_issues = %v, want %v", verdict.HasIssues, tc.hasIssues)
			}
			if verdict.Issues != tc.issues {
				t.Errorf("issues = %q, want %q", verdict.Issues, tc.issues)
			}
		})
	}
}

func TestParseVerdict_NonObjectJSON(t *testing.T) {
	for _, raw := range []string{`[1, 2]`, `"just a string"`, `42`} {
		verdict := ParseVerdict(raw, models.CriterionSCQAPresence)
		if verdict.HasIssues {
			t.Errorf("non-object %q should degrade to neutral verdict", raw)
		}
	}
}
