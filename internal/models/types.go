package models

// Scope identifies the structural grain at which one judgment is made.
type Scope string

const (
	ScopeDocumentWide         Scope = "document_wide"
	ScopeAllSummaries         Scope = "all_summaries"
	ScopeSummaryPairs         Scope = "summary_pairs"
	ScopeSummaryWithMessages  Scope = "summary_with_messages"
	ScopeMessagesUnderSummary Scope = "messages_under_summary"
	ScopeMessageWithBodies    Scope = "message_with_bodies"
)

// Criterion names one evaluable quality dimension. The set is closed:
// every criterion belongs to exactly one scope.
type Criterion string

const (
	// document_wide
	CriterionRhetoricalExpression Criterion = "rhetorical_expression"

	// all_summaries
	CriterionPreviousDiscussionReview        Criterion = "previous_discussion_review"
	CriterionSCQAPresence                    Criterion = "scqa_presence"
	CriterionDuplicateTransitionConjunctions Criterion = "duplicate_transition_conjunctions"

	// summary_pairs
	CriterionConjunctionValidity            Criterion = "conjunction_validity"
	CriterionInappropriateConjunctions      Criterion = "inappropriate_conjunctions"
	CriterionLogicalConsistencyWithPrevious Criterion = "logical_consistency_with_previous"

	// summary_with_messages
	CriterionSequentialDevelopment Criterion = "sequential_development"

	// messages_under_summary
	CriterionConjunctionAppropriateness Criterion = "conjunction_appropriateness"
	CriterionDuplicateTransitionWords   Criterion = "duplicate_transition_words"
	CriterionAvoidUnnecessaryNumbering  Criterion = "avoid_unnecessary_numbering"

	// message_with_bodies
	CriterionMessageBodyConsistency Criterion = "message_body_consistency"
)

// Input document

type Body struct {
	Content string `json:"content"`
}

type Message struct {
	Content string `json:"content"`
	Bodies  []Body `json:"bodies,omitempty"`
}

type Summary struct {
	Content  string    `json:"content"`
	Messages []Message `json:"messages,omitempty"`
}

// Document is one outline to evaluate: ordered summaries, each carrying
// messages, each carrying bodies, plus an optional title. Immutable per run.
type Document struct {
	Title     string    `json:"title,omitempty"`
	Summaries []Summary `json:"summaries"`
}

// CriteriaResult is the parsed verdict of one oracle call.
type CriteriaResult struct {
	Criteria  Criterion `json:"criteria"`
	HasIssues bool      `json:"has_issues"`
	Issues    string    `json:"issues"`
}

// EvaluationResult attaches one or more verdicts to the fragment they judged.
type EvaluationResult struct {
	TargetText      string           `json:"target_text"`
	Scope           Scope            `json:"scope"`
	CriteriaResults []CriteriaResult `json:"criteria_results"`
}

// EvaluationResponse is the outbound report: only results carrying at least
// one has_issues=true verdict, narrowed to the positive verdicts, plus the
// aggregate score.
type EvaluationResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Results []EvaluationResult `json:"results"`
	Score   int                `json:"score"`
}
