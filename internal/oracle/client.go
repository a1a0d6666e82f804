// Package oracle wraps the LLM client with the failure policy the
// evaluation pipeline relies on: bounded retries with jittered delay, and a
// neutral sentinel payload once retries are exhausted, so one outage
// degrades a single verdict instead of aborting the run.
package oracle

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/llm"
)

// systemInstruction accompanies every evaluation call.
const systemInstruction = "You are an AI assistant that evaluates documents."

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxTokens   int
	Temperature float64
}

func (c *Config) applyDefaults() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.BaseDelay == 0 {
		c.BaseDelay = 2 * time.Second
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2000
	}
}

type Client struct {
	llmClient llm.LLMClient
	cfg       Config
	logger    *zerolog.Logger
}

func NewClient(llmClient llm.LLMClient, cfg Config, logger *zerolog.Logger) *Client {
	cfg.applyDefaults()
	return &Client{
		llmClient: llmClient,
		cfg:       cfg,
		logger:    logger,
	}
}

// Evaluate sends the composed prompt and returns the raw completion text
// with control characters stripped. It never returns an error: transport
// failures are retried, and once attempts run out the caller gets a
// sentinel payload the response parser turns into a neutral verdict.
//
// Retry delay is jittered-constant: baseDelay * (1 + r), r in [0,1).
func (c *Client) Evaluate(ctx context.Context, prompt string) string {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		resp, err := c.llmClient.InvokeModel(ctx, llm.LLMRequest{
			System:      systemInstruction,
			Prompt:      prompt,
			MaxTokens:   c.cfg.MaxTokens,
			Temperature: c.cfg.Temperature,
		})
		if err == nil {
			return stripControlChars(resp.Content)
		}

		lastErr = err
		c.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", c.cfg.MaxAttempts).
			Msg("oracle call failed")

		if attempt == c.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return unavailablePayload("evaluation was cancelled before completion")
		case <-time.After(retryDelay(c.cfg.BaseDelay)):
		}
	}

	c.logger.Error().
		Err(lastErr).
		Int("max_attempts", c.cfg.MaxAttempts).
		Msg("oracle retries exhausted, degrading to neutral verdict")

	return unavailablePayload("the evaluation could not be performed because the evaluation service was unavailable")
}

// retryDelay scales the base delay by a random factor in [1, 2).
func retryDelay(base time.Duration) time.Duration {
	return time.Duration(float64(base) * (1 + rand.Float64()))
}

// unavailablePayload is the sentinel reply equivalent to a neutral verdict.
func unavailablePayload(reason string) string {
	payload, err := json.Marshal(map[string]any{
		"has_issues": false,
		"issues":     reason,
	})
	if err != nil {
		return `{"has_issues": false, "issues": "evaluation unavailable"}`
	}
	return string(payload)
}

// stripControlChars removes control characters models occasionally emit
// inside JSON strings, which would otherwise break parsing downstream.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}
