package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/report"
)

type Consumer struct {
	client        *redis.Client
	stream        string
	groupID       string
	consumerName  string
	resultsStream string
	orchestrator  *evaluator.Orchestrator
	scorer        *aggregator.Scorer
	logger        *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *StreamConfig, orchestrator *evaluator.Orchestrator, scorer *aggregator.Scorer, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		stream:        cfg.Stream,
		groupID:       cfg.Group,
		consumerName:  cfg.Consumer,
		resultsStream: cfg.ResultsStream,
		orchestrator:  orchestrator,
		scorer:        scorer,
		logger:        logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message — ACK to skip it
		return
	}

	results := c.orchestrator.EvaluateDocument(ctx, doc)
	score := c.scorer.Score(results)
	response := report.Shape(doc, results, score)

	c.logger.Info().
		Str("id", msg.ID).
		Int("findings", len(response.Results)).
		Int("score", response.Score).
		Msg("Evaluation complete")

	c.publish(ctx, msg.ID, response)
	c.ack(ctx, msg.ID)
}

// publish pushes the evaluation response onto the results stream, when one
// is configured.
func (c *Consumer) publish(ctx context.Context, msgID string, response models.EvaluationResponse) {
	if c.resultsStream == "" {
		return
	}

	body, err := json.Marshal(response)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to encode response")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultsStream,
		Values: map[string]any{
			"source_id": msgID,
			"payload":   string(body),
		},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to publish response")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
