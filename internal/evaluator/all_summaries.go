package evaluator

import (
	"context"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// allSummariesEvaluator judges the joined summary sequence as one fragment.
type allSummariesEvaluator struct {
	*core
}

func (e *allSummariesEvaluator) Scope() models.Scope {
	return models.ScopeAllSummaries
}

func (e *allSummariesEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	target, ok := extractor.AllSummariesTarget(doc)
	if !ok {
		return nil
	}

	criteria := catalog.CriteriaForScope(e.Scope())
	tasks := make([]evalTask, 0, len(criteria))
	for _, criterion := range criteria {
		tasks = append(tasks, evalTask{
			key:       prompt.Key(criterion, e.Scope()),
			criterion: criterion,
			target:    target,
			keepClean: true,
		})
	}

	return e.runTasks(ctx, e.Scope(), tasks)
}
