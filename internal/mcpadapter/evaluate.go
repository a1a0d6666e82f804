package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/report"
)

// EvaluateInput is the MCP tool input schema (matches HTTP API field names).
type EvaluateInput struct {
	Title     string           `json:"title,omitempty" jsonschema:"optional outline title"`
	Summaries []models.Summary `json:"summaries" jsonschema:"ordered outline summaries, each optionally carrying messages and bodies"`
}

// NewEvaluateHandler returns a tool handler over the given pipeline.
// Pass the returned function to mcp.AddTool.
func NewEvaluateHandler(orchestrator *evaluator.Orchestrator, scorer *aggregator.Scorer) func(context.Context, *mcp.CallToolRequest, EvaluateInput) (*mcp.CallToolResult, models.EvaluationResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, models.EvaluationResponse, error) {
		return EvaluateOutline(ctx, orchestrator, scorer, req, input)
	}
}

// EvaluateOutline runs the evaluation pipeline and returns the shaped response.
func EvaluateOutline(
	ctx context.Context,
	orchestrator *evaluator.Orchestrator,
	scorer *aggregator.Scorer,
	req *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, models.EvaluationResponse, error) {
	doc := models.Document{
		Title:     input.Title,
		Summaries: input.Summaries,
	}

	results := orchestrator.EvaluateDocument(ctx, doc)
	score := scorer.Score(results)

	return nil, report.Shape(doc, results, score), nil
}
