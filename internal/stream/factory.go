package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/stream/redis"
)

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	orchestrator *evaluator.Orchestrator,
	scorer *aggregator.Scorer,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, 5, logger)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.Redis, orchestrator, scorer, logger), nil

	// Future providers:
	// case "kafka":
	//     return kafka.NewConsumer(...)
	// case "sqs":
	//     return sqs.NewConsumer(...)

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
