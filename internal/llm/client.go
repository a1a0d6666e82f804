package llm

import (
	"context"
)

// LLMClient is an interface for invoking LLM models.
// This allows mocking in tests without making real API calls. Retry policy
// belongs to the caller; implementations make a single attempt.
//
//go:generate mockgen -destination=mocks/mock_client.go -package=mocks github.com/outline-tools/outline-critic/internal/llm LLMClient
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
