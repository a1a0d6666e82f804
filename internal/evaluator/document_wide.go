package evaluator

import (
	"context"

	"github.com/outline-tools/outline-critic/internal/catalog"
	"github.com/outline-tools/outline-critic/internal/extractor"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

// sentencePromptKey selects the per-sentence rhetorical template instead of
// the scope-derived key.
const sentencePromptKey = "rhetorical_expression_sentence"

// documentWideEvaluator judges the document as a whole. The rhetorical
// criterion is special: it runs once per sentence of summary and message
// content, and only sentences with issues produce a result at all.
type documentWideEvaluator struct {
	*core
}

func (e *documentWideEvaluator) Scope() models.Scope {
	return models.ScopeDocumentWide
}

func (e *documentWideEvaluator) Evaluate(ctx context.Context, doc models.Document) []models.EvaluationResult {
	if len(doc.Summaries) == 0 {
		return nil
	}

	var tasks []evalTask
	for _, criterion := range catalog.CriteriaForScope(e.Scope()) {
		if criterion == models.CriterionRhetoricalExpression {
			for _, target := range extractor.SentenceTargets(doc) {
				tasks = append(tasks, evalTask{
					key:       sentencePromptKey,
					criterion: criterion,
					target:    target,
					keepClean: false,
				})
			}
			continue
		}

		tasks = append(tasks, evalTask{
			key:       prompt.Key(criterion, e.Scope()),
			criterion: criterion,
			target:    extractor.DocumentTarget(doc),
			keepClean: true,
		})
	}

	return e.runTasks(ctx, e.Scope(), tasks)
}
