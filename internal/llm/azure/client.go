// Package azure adapts the Azure OpenAI chat completion endpoint to the
// LLMClient interface. This is the deployment the evaluation prompts were
// written against.
package azure

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"github.com/outline-tools/outline-critic/internal/llm"
)

type Client struct {
	client     *openai.Client
	deployment string
}

func NewClient(apiKey string, endpoint string, apiVersion string, deployment string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("azure OpenAI API key is required")
	}
	if endpoint == "" {
		return nil, fmt.Errorf("azure OpenAI endpoint is required")
	}
	if deployment == "" {
		return nil, fmt.Errorf("azure OpenAI deployment name is required")
	}

	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}

	return &Client{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, buildChatRequest(c.deployment, request))
	if err != nil {
		return nil, fmt.Errorf("unable to invoke azure deployment %s: %w", c.deployment, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in azure response")
	}

	choice := resp.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}

func buildChatRequest(deployment string, request llm.LLMRequest) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if request.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Prompt,
	})

	// The temperature field is tagged omitempty, so an exact 0 would be
	// dropped from the request body and the deployment would run at its
	// default of 1.0. The library's documented workaround is to send the
	// smallest non-zero float instead.
	temperature := float32(request.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       deployment,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   request.MaxTokens,
		TopP:        0.95,
	}
}
