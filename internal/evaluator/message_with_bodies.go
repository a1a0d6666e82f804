package evaluator

import (
	"context"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// messageWithBodiesEvaluator judges each message against its bodies.
// Messages without bodies are skipped.
type messageWithBodiesEvaluator struct {
	*core
}

func (e *messageWithBodiesEvaluator) Scope() models.Scope {
	return models.ScopeMessageWithBodies
}

func (e *messageWithBodiesEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	targets := extractor.MessageWithBodiesTargets(doc)
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
