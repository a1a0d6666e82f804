package evaluator

import (
	"context"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// messagesUnderSummaryEvaluator judges each summary's message block.
// Summaries without messages enumerate no tasks.
type messagesUnderSummaryEvaluator struct {
	*core
}

func (e *messagesUnderSummaryEvaluator) Scope() models.Scope {
	return models.ScopeMessagesUnderSummary
}

func (e *messagesUnderSummaryEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	targets := extractor.MessagesUnderSummaryTargets(doc)
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
