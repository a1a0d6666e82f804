package catalog

import (
	"github.com/outline-tools/outline-critic/internal/models"
)

// CriteriaForScope returns the criteria bound to a scope, in evaluation
// order. The switch is exhaustive over the known scopes; anything else
// contributes no tasks.
func CriteriaForScope(scope models.Scope) []models.Criterion {
	switch scope {
	case models.ScopeDocumentWide:
		return []models.Criterion{
			models.CriterionRhetoricalExpression,
		}
	case models.ScopeAllSummaries:
		return []models.Criterion{
			models.CriterionPreviousDiscussionReview,
			models.CriterionSCQAPresence,
			models.CriterionDuplicateTransitionConjunctions,
		}
	case models.ScopeSummaryPairs:
		return []models.Criterion{
			models.CriterionConjunctionValidity,
			models.CriterionInappropriateConjunctions,
			models.CriterionLogicalConsistencyWithPrevious,
		}
	case models.ScopeSummaryWithMessages:
		return []models.Criterion{
			models.CriterionSequentialDevelopment,
		}
	case models.ScopeMessagesUnderSummary:
		return []models.Criterion{
			models.CriterionConjunctionAppropriateness,
			models.CriterionDuplicateTransitionWords,
			models.CriterionAvoidUnnecessaryNumbering,
		}
	case models.ScopeMessageWithBodies:
		return []models.Criterion{
			models.CriterionMessageBodyConsistency,
		}
	default:
		return nil
	}
}

// Scopes lists every scope the orchestrator evaluates, in a stable order.
func Scopes() []models.Scope {
	return []models.Scope{
		models.ScopeDocumentWide,
		models.ScopeAllSummaries,
		models.ScopeSummaryPairs,
		models.ScopeSummaryWithMessages,
		models.ScopeMessagesUnderSummary,
		models.ScopeMessageWithBodies,
	}
}

// AllCriteria returns the full criterion set, the union of every scope's
// criteria.
func AllCriteria() []models.Criterion {
	var all []models.Criterion
	for _, scope := range Scopes() {
		all = append(all, CriteriaForScope(scope)...)
	}
	return all
}
