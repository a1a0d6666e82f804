package aggregator

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/models"
)

func newScorer() *Scorer {
	logger := zerolog.Nop()
	return NewScorer(&logger)
}

func resultWithIssue(criterion models.Criterion) models.EvaluationResult {
	return models.EvaluationResult{
		TargetText: "x",
		Scope:      models.ScopeAllSummaries,
		CriteriaResults: []models.CriteriaResult{
			{Criteria: criterion, HasIssues: true, Issues: "problem"},
		},
	}
}

func TestScore_NoIssues(t *testing.T) {
	results := []models.EvaluationResult{
		{
			TargetText: "x",
			Scope:      models.ScopeAllSummaries,
			CriteriaResults: []models.CriteriaResult{
				{Criteria: models.CriterionSCQAPresence, HasIssues: false, Issues: "no issues"},
			},
		},
	}

	if got := newScorer().Score(results); got != 100 {
		t.Errorf("expected 100 for clean results, got %d", got)
	}
}

func TestScore_ThreeFlawedCriteria(t *testing.T) {
	results := []models.EvaluationResult{
		resultWithIssue(models.CriterionSCQAPresence),
		resultWithIssue(models.CriterionConjunctionValidity),
		resultWithIssue(models.CriterionMessageBodyConsistency),
	}

	if got := newScorer().Score(results); got != 76 {
		t.Errorf("expected 100 - 3*8 = 76, got %d", got)
	}
}

func TestScore_DeduplicatesWithinCriterion(t *testing.T) {
	// Five separate rhetorical findings still count as one flawed criterion.
	var results []models.EvaluationResult
	for i := 0; i < 5; i++ {
		results = append(results, resultWithIssue(models.CriterionRhetoricalExpression))
	}

	if got := newScorer().Score(results); got != 92 {
		t.Errorf("expected 92 for one distinct flawed criterion, got %d", got)
	}
}

func TestScore_ClampedAtFloor(t *testing.T) {
	var results []models.EvaluationResult
	for _, criterion := range catalog.AllCriteria() {
		results = append(results, resultWithIssue(criterion))
	}

	// 100 - 12*8 would be 4; the floor is 10.
	if got := newScorer().Score(results); got != 10 {
		t.Errorf("expected floor of 10, got %d", got)
	}
}

func TestScore_EmptyAndNilInput(t *testing.T) {
	scorer := newScorer()
	if got := scorer.Score(nil); got != 100 {
		t.Errorf("expected 100 for nil input, got %d", got)
	}
	if got := scorer.Score([]models.EvaluationResult{}); got != 100 {
		t.Errorf("expected 100 for empty input, got %d", got)
	}
}
