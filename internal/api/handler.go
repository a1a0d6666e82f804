package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/api/middleware"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/report"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	orchestrator *evaluator.Orchestrator
	scorer       *aggregator.Scorer
	logger       *zerolog.Logger
}

func NewHandler(orchestrator *evaluator.Orchestrator, scorer *aggregator.Scorer, logger *zerolog.Logger) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		scorer:       scorer,
		logger:       logger,
	}
}

// POST /api/v1/evaluate
// Body: Document
// Returns: EvaluationResponse
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var doc models.Document
	if err := req.ReadEntity(&doc); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	messages, bodies := countParts(doc)
	h.logger.Info().
		Bool("has_title", doc.Title != "").
		Int("summaries", len(doc.Summaries)).
		Int("messages", messages).
		Int("bodies", bodies).
		Msg("Start evaluation")

	ctx := req.Request.Context()
	results := h.orchestrator.EvaluateDocument(ctx, doc)
	score := h.scorer.Score(results)

	evalResponse := report.Shape(doc, results, score)

	h.logger.Info().
		Int("results", len(evalResponse.Results)).
		Int("score", evalResponse.Score).
		Msg("Evaluation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, evalResponse)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func countParts(doc models.Document) (messages int, bodies int) {
	for _, summary := range doc.Summaries {
		messages += len(summary.Messages)
		for _, message := range summary.Messages {
			bodies += len(message.Bodies)
		}
	}
	return messages, bodies
}
