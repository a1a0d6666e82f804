// Package stream consumes outline documents from a message stream and runs
// them through the evaluation pipeline.
package stream

import (
	"github.com/outline-tools/outline-critic/internal/stream/redis"
)

type StreamConfig struct {
	Provider string // redis, kafka, sqs, etc
	Redis    *redis.StreamConfig
}
