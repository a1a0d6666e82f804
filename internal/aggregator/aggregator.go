package aggregator

import (
	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/models"
)

const (
	baseScore           = 100
	penaltyPerCriterion = 8
	minScore            = 10
)

type Scorer struct {
	logger *zerolog.Logger
}

func NewScorer(logger *zerolog.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score maps the flattened verdict set to an integer in [10,100]. The
// penalty counts distinct criteria that flagged an issue anywhere, not
// individual findings: ten rhetorical slips cost the same as one. Scoring
// never fails; an internal panic yields the neutral default of 100.
func (s *Scorer) Score(results []models.EvaluationResult) (score int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Msg("score computation failed, returning neutral default")
			score = baseScore
		}
	}()

	flawed := make(map[models.Criterion]struct{})
	for _, result := range results {
		for _, verdict := range result.CriteriaResults {
			if verdict.HasIssues {
				flawed[verdict.Criteria] = struct{}{}
			}
		}
	}

	score = baseScore - len(flawed)*penaltyPerCriterion
	if score < minScore {
		score = minScore
	}

	s.logger.Info().
		Int("flawed_criteria", len(flawed)).
		Int("score", score).
		Msg("score computed")
	return score
}
