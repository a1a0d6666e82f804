package azure

import (
	"encoding/json"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/outline-tools/outline-critic/internal/llm"
)

func TestNewClient_RequiredFields(t *testing.T) {
	cases := []struct {
		name       string
		apiKey     string
		endpoint   string
		deployment string
	}{
		{"missing api key", "", "https://example.openai.azure.com", "dep"},
		{"missing endpoint", "key", "", "dep"},
		{"missing deployment", "key", "https://example.openai.azure.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewClient(tc.apiKey, tc.endpoint, "", tc.deployment); err == nil {
				t.Error("expected a configuration error")
			}
		})
	}
}

func TestBuildChatRequest_ZeroTemperatureSurvivesMarshal(t *testing.T) {
	req := buildChatRequest("dep", llm.LLMRequest{
		System:      "You are an AI assistant that evaluates documents.",
		Prompt:      "judge this",
		MaxTokens:   2000,
		Temperature: 0.0,
	})

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	// temperature is tagged omitempty; an exact 0 disappears from the body
	// and the deployment runs at its default of 1.0 instead.
	if !strings.Contains(string(body), `"temperature"`) {
		t.Fatalf("temperature field missing from request body: %s", body)
	}

	var decoded struct {
		Temperature float64 `json:"temperature"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if decoded.Temperature <= 0 || decoded.Temperature > 1e-30 {
		t.Errorf("expected a vanishingly small positive temperature, got %g", decoded.Temperature)
	}
}

func TestBuildChatRequest_NonZeroTemperaturePassedThrough(t *testing.T) {
	req := buildChatRequest("dep", llm.LLMRequest{
		Prompt:      "judge this",
		MaxTokens:   100,
		Temperature: 0.7,
	})

	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %g", req.Temperature)
	}
}

func TestBuildChatRequest_Messages(t *testing.T) {
	req := buildChatRequest("dep", llm.LLMRequest{
		System: "system text",
		Prompt: "user text",
	})

	if req.Model != "dep" {
		t.Errorf("expected deployment as model, got %q", req.Model)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != "system text" {
		t.Errorf("unexpected system message: %+v", req.Messages[0])
	}
	if req.Messages[1].Role != openai.ChatMessageRoleUser || req.Messages[1].Content != "user text" {
		t.Errorf("unexpected user message: %+v", req.Messages[1])
	}

	req = buildChatRequest("dep", llm.LLMRequest{Prompt: "user text"})
	if len(req.Messages) != 1 {
		t.Fatalf("expected user message only without a system instruction, got %d", len(req.Messages))
	}
}
