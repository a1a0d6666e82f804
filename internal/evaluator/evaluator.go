// Package evaluator contains the evaluation engine: one evaluator per
// structural scope, fanning (fragment, criterion) tasks out to the oracle,
// and an orchestrator running all scopes concurrently.
package evaluator

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/oracle"
	"github.com/outline-tools/outline-critic/internal/parser"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// ScopeEvaluator enumerates and runs the evaluation tasks of one scope.
// Returning an empty list is the normal outcome when the document's shape
// gives the scope nothing to judge.
type ScopeEvaluator interface {
	Scope() models.Scope
	Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult
}

// core holds the collaborators every scope evaluator shares.
type core struct {
	prompts *prompt.Store
	oracle  *oracle.Client
	logger  *zerolog.Logger
}

// judge runs a single task: resolve the prompt, call the oracle, parse the
// verdict. It never fails; prompt construction errors degrade to a neutral
// verdict the same way oracle failures do.
func (c *core) judge(ctx context.Context, key string, criterion models.Criterion, payload string) models.CriteriaResult {
	promptText, err := c.prompts.Render(key, payload)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("prompt_key", key).
			Str("criterion", string(criterion)).
			Msg("failed to build evaluation prompt")
		return models.CriteriaResult{
			Criteria:  criterion,
			HasIssues: false,
			Issues:    "failed to build the evaluation prompt",
		}
	}

	raw := c.oracle.Evaluate(ctx, promptText)
	return parser.ParseVerdict(raw, criterion)
}

// evalTask is one (fragment, criterion) unit of work.
type evalTask struct {
	key       string
	criterion models.Criterion
	target    extractor.Target
	// keepClean controls whether a clean verdict still produces a result.
	// The per-sentence rhetorical check drops clean fragments early; every
	// other task keeps its result regardless of verdict.
	keepClean bool
}

// runTasks dispatches every task concurrently and returns the surviving
// results in task order. Tasks share nothing, so each goroutine writes only
// its own slot.
func (c *core) runTasks(ctx context.Context, scope models.Scope, tasks []evalTask) []models.EvaluationResult {
	if len(tasks) == 0 {
		return nil
	}

	slots := make([]*models.EvaluationResult, len(tasks))
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task evalTask) {
			defer wg.Done()

			verdict := c.judge(ctx, task.key, task.criterion, task.target.Payload)
			if !task.keepClean && !verdict.HasIssues {
				return
			}

			slots[i] = &models.EvaluationResult{
				TargetText:      task.target.Display,
				Scope:           scope,
				CriteriaResults: []models.CriteriaResult{verdict},
			}
		}(i, task)
	}

	wg.Wait()

	var results []models.EvaluationResult
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}
	return results
}
