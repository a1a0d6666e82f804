package evaluator

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
)

const (
	classifierPromptKey = "development_type_classifier"
	sequentialPromptKey = "sequential_development_summary_with_messages"
	individualPromptKey = "individual_development_summary_with_messages"
)

// summaryWithMessagesEvaluator judges how each summary's messages develop
// its claim. A classifier call first decides whether the summary argues
// sequentially or through independent points, which selects the template
// for the actual judgment.
type summaryWithMessagesEvaluator struct {
	*core
}

func (e *summaryWithMessagesEvaluator) Scope() models.Scope {
	return models.ScopeSummaryWithMessages
}

func (e *summaryWithMessagesEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	targets := extractor.SummaryWithMessagesTargets(doc)
	if len(targets) == 0 {
		return nil
	}

	slots := make([]*models.EvaluationResult, len(targets))
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func(i int, target extractor.Target) {
			defer wg.Done()

			key := e.classifyDevelopment(ctx, target.Payload)
			verdict := e.judge(ctx, key, models.CriterionSequentialDevelopment, target.Payload)

			slots[i] = &models.EvaluationResult{
				TargetText:      target.Display,
				Scope:           e.Scope(),
				CriteriaResults: []models.CriteriaResult{verdict},
			}
		}(i, target)
	}

	wg.Wait()

	results := make([]models.EvaluationResult, 0, len(slots))
	for _, slot := range slots {
		results = append(results, *slot)
	}
	return results
}

// classifyDevelopment asks the oracle which logical development the summary
// uses and returns the matching prompt key. Any classification failure
// falls back to the sequential template.
func (e *summaryWithMessagesEvaluator) classifyDevelopment(ctx context.Context, payload string) string {
	promptText, err := e.prompts.Render(classifierPromptKey, payload)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to build classifier prompt, assuming sequential development")
		return sequentialPromptKey
	}

	raw := e.oracle.Evaluate(ctx, promptText)

	var classification struct {
		DevelopmentType string `json:"development_type"`
		Explanation     string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(raw), &classification); err != nil {
		e.logger.Warn().Err(err).Msg("development type classification unparsable, assuming sequential development")
		return sequentialPromptKey
	}

	e.logger.Debug().
		Str("development_type", classification.DevelopmentType).
		Str("explanation", classification.Explanation).
		Msg("summary development classified")

	if classification.DevelopmentType == "individual_development" {
		return individualPromptKey
	}
	return sequentialPromptKey
}
