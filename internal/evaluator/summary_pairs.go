package evaluator

import (
	"context"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// summaryPairsEvaluator judges every adjacent summary pair. Fewer than two
// summaries means nothing to judge.
type summaryPairsEvaluator struct {
	*core
}

func (e *summaryPairsEvaluator) Scope() models.Scope {
	return models.ScopeSummaryPairs
}

func (e *summaryPairsEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	targets := extractor.SummaryPairTargets(doc)
	if len(targets) == 0 {
		return nil
	}

	criteria := catalog.CriteriaForScope(e.Scope())
	tasks := make([]evalTask, 0, len(targets)*len(criteria))
	for _, target := range targets {
		for _, criterion := range criteria {
			tasks = append(tasks, evalTask{
				key:       prompt.Key(criterion, e.Scope()),
				criterion: criterion,
				target:    target,
				keepClean: true,
			})
		}
	}

	return e.runTasks(ctx, e.Scope(), tasks)
}
