package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/outline-tools/outline-critic/internal/aggregator"
	"github.com/outline-tools/outline-critic/internal/evaluator"
	"github.com/outline-tools/outline-critic/internal/llm"
	"github.com/outline-tools/outline-critic/internal/llm/mocks"
	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/oracle"
	"github.com/outline-tools/outline-critic/internal/prompt"
)

func newTestProcessor(t *testing.T, workers int) *Processor {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockLLMClient(ctrl)
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{Content: `{"has_issues": false, "issues": ""}`}, nil).
		AnyTimes()

	store, err := prompt.NewStore(&prompt.Config{Default: "Evaluate.\n\n{{.Data}}"})
	if err != nil {
		t.Fatalf("failed to build prompt store: %v", err)
	}

	logger := zerolog.Nop()
	oracleClient := oracle.NewClient(mockClient, oracle.Config{MaxAttempts: 1, BaseDelay: time.Millisecond}, &logger)
	orchestrator := evaluator.NewOrchestrator(store, oracleClient, &logger)

	return NewProcessor(orchestrator, aggregator.NewScorer(&logger), workers, &logger)
}

func TestProcessor_ProcessesAllValidRecords(t *testing.T) {
	processor := newTestProcessor(t, 3)

	var records []InputRecord
	for i := 1; i <= 10; i++ {
		records = append(records, InputRecord{
			LineNumber: i,
			Document: models.Document{
				Summaries: []models.Summary{{Content: fmt.Sprintf("サマリー%d。", i)}},
			},
		})
	}

	seen := make(map[int]bool)
	for record := range processor.Process(context.Background(), records) {
		if seen[record.LineNumber] {
			t.Errorf("line %d emitted twice", record.LineNumber)
		}
		seen[record.LineNumber] = true

		if record.Response.Score != 100 {
			t.Errorf("expected score 100, got %d", record.Response.Score)
		}
	}

	if len(seen) != 10 {
		t.Errorf("expected 10 outputs, got %d", len(seen))
	}
}

func TestProcessor_SkipsMalformedRecords(t *testing.T) {
	processor := newTestProcessor(t, 2)

	records := []InputRecord{
		{LineNumber: 1, Document: models.Document{Summaries: []models.Summary{{Content: "良いサマリー。"}}}},
		{LineNumber: 2, Error: errors.New("unexpected end of JSON input")},
		{LineNumber: 3, Document: models.Document{Summaries: []models.Summary{{Content: "別のサマリー。"}}}},
	}

	count := 0
	for record := range processor.Process(context.Background(), records) {
		count++
		if record.LineNumber == 2 {
			t.Error("malformed record reached the output")
		}
	}
	if count != 2 {
		t.Errorf("expected 2 outputs, got %d", count)
	}
}
