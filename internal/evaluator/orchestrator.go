package evaluator

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/oracle"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// Orchestrator runs every scope evaluator against a document and flattens
// their results.
type Orchestrator struct {
	evaluators []ScopeEvaluator
	logger     *zerolog.Logger
}

func NewOrchestrator(prompts *prompt.Store, oracleClient *oracle.Client, logger *zerolog.Logger) *Orchestrator {
	c := &core{
		prompts: prompts,
		oracle:  oracleClient,
		logger:  logger,
	}

	return &Orchestrator{
		evaluators: []ScopeEvaluator{
			&documentWideEvaluator{c},
			&allSummariesEvaluator{c},
			&summaryPairsEvaluator{c},
			&summaryWithMessagesEvaluator{c},
			&messagesUnderSummaryEvaluator{c},
			&messageWithBodiesEvaluator{c},
		},
		logger: logger,
	}
}

// EvaluateDocument dispatches all scope evaluators concurrently. Each
// evaluator's internal ordering is preserved; the scopes themselves are
// flattened in catalog order since aggregation is order-invariant.
func (o *Orchestrator) EvaluateDocument(ctx context.Context, doc models.Document) []models.EvaluationResult {
	perScope := make([][]models.EvaluationResult, len(o.evaluators))
	var wg sync.WaitGroup

	for i, evaluator := range o.evaluators {
		wg.Add(1)
		go func(i int, evaluator ScopeEvaluator) {
			defer wg.Done()
			results := evaluator.Evaluate(ctx, doc)
			o.logger.Debug().
				Str("scope", string(evaluator.Scope())).
				Int("results", len(results)).
				Msg("scope evaluation complete")
			perScope[i] = results
		}(i, evaluator)
	}

	wg.Wait()

	var results []models.EvaluationResult
	for _, scopeResults := range perScope {
		results = append(results, scopeResults...)
	}
	return results
}
