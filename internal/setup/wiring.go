package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/llm"
	"github.com/outline-tools/outline-critic/internal/llm/azure"
	"github.com/outline-tools/outline-critic/internal/llm/bedrock"
	"github.com/outline-tools/outline-critic/internal/oracle"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

type Config struct {
	DefaultProvider string

	// Azure OpenAI
	AzureAPIKey     string
	AzureEndpoint   string
	AzureAPIVersion string
	AzureDeployment string

	// AWS Bedrock
	AWSRegion     string
	ClaudeModelID string

	// Oracle tuning
	OracleMaxAttempts int
	OracleBaseDelay   time.Duration
	OracleMaxTokens   int
	OracleTemperature float64
}

type Dependencies struct {
	Orchestrator *evaluator.Orchestrator
	Scorer       *aggregator.Scorer
	Logger       *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		DefaultProvider:   getEnv("DEFAULT_LLM_PROVIDER", "azure"),
		AzureAPIKey:       getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureEndpoint:     getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureAPIVersion:   getEnv("AZURE_OPENAI_API_VERSION", ""),
		AzureDeployment:   getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		OracleMaxAttempts: getEnvInt("ORACLE_MAX_ATTEMPTS", 3),
		OracleBaseDelay:   time.Duration(getEnvFloat("ORACLE_BASE_DELAY_SECONDS", 2)) * time.Second,
		OracleMaxTokens:   getEnvInt("ORACLE_MAX_TOKENS", 2000),
		OracleTemperature: getEnvFloat("ORACLE_TEMPERATURE", 0.0),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	oracleClient := oracle.NewClient(llmClient, oracle.Config{
		MaxAttempts: cfg.OracleMaxAttempts,
		BaseDelay:   cfg.OracleBaseDelay,
		MaxTokens:   cfg.OracleMaxTokens,
		Temperature: cfg.OracleTemperature,
	}, logger)

	promptsConfig, err := prompt.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts config: %w", err)
	}
	prompts, err := prompt.NewStore(promptsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt store: %w", err)
	}

	return &Dependencies{
		Orchestrator: evaluator.NewOrchestrator(prompts, oracleClient, logger),
		Scorer:       aggregator.NewScorer(logger),
		Logger:       logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "azure":
		return azure.NewClient(cfg.AzureAPIKey, cfg.AzureEndpoint, cfg.AzureAPIVersion, cfg.AzureDeployment)
	default:
		return azure.NewClient(cfg.AzureAPIKey, cfg.AzureEndpoint, cfg.AzureAPIVersion, cfg.AzureDeployment)
	}
}
