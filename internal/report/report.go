// Package report shapes flattened evaluation results into the outbound
// response: only fragments with confirmed issues survive, narrowed to their
// positive verdicts.
package report

import (
	"github.com/outline-tools/outline-critic/internal/models"
)

const (
	statusSuccess  = "success"
	successMessage = "Evaluation of the outline completed"
)

// FilterResults keeps results carrying at least one positive verdict and
// narrows each kept result's verdict list to the positives. Narrowing
// builds fresh copies; the input slice is never mutated. An all_summaries
// result is re-bound to the document title when one is present, so the
// finding attaches to the heading the reader sees.
func FilterResults(doc models.Document, results []models.EvaluationResult) []models.EvaluationResult {
	var filtered []models.EvaluationResult
	for _, result := range results {
		var positive []models.CriteriaResult
		for _, verdict := range result.CriteriaResults {
			if verdict.HasIssues {
				positive = append(positive, verdict)
			}
		}
		if len(positive) == 0 {
			continue
		}

		kept := models.EvaluationResult{
			TargetText:      result.TargetText,
			Scope:           result.Scope,
			CriteriaResults: positive,
		}
		if kept.Scope == models.ScopeAllSummaries && doc.Title != "" {
			kept.TargetText = doc.Title
		}
		filtered = append(filtered, kept)
	}
	return filtered
}

// Shape builds the final response from the flattened results and the
// aggregate score.
func Shape(doc models.Document, results []models.EvaluationResult, score int) models.EvaluationResponse {
	return models.EvaluationResponse{
		Status:  statusSuccess,
		Message: successMessage,
		Results: FilterResults(doc, results),
		Score:   score,
	}
}
