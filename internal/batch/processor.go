package batch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/report"
)

// OutputRecord pairs an evaluation response with the input line it came from.
type OutputRecord struct {
	LineNumber int                       `json:"line_number"`
	Response   models.EvaluationResponse `json:"response"`
}

type Processor struct {
	orchestrator *evaluator.Orchestrator
	scorer       *aggregator.Scorer
	workers      int
	logger       *zerolog.Logger
}

func NewProcessor(orchestrator *evaluator.Orchestrator, scorer *aggregator.Scorer, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		orchestrator: orchestrator,
		scorer:       scorer,
		workers:      workers,
		logger:       logger,
	}
}

// Process evaluates records through a fixed pool of workers. Records that
// failed to parse are logged and skipped. Output order follows completion,
// not input order; each record carries its line number.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan OutputRecord {
	jobs := make(chan InputRecord)
	out := make(chan OutputRecord)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				results := p.orchestrator.EvaluateDocument(ctx, record.Document)
				score := p.scorer.Score(results)

				select {
				case out <- OutputRecord{
					LineNumber: record.LineNumber,
					Response:   report.Shape(record.Document, results, score),
				}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			if record.Error != nil {
				p.logger.Error().
					Int("line", record.LineNumber).
					Err(record.Error).
					Msg("skipping malformed record")
				continue
			}

			select {
			case jobs <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
