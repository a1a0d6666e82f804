package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/outline-tools/outline-critic/internal/models"
)

func outputRecord(line int, score int, findings int) OutputRecord {
	results := make([]models.EvaluationResult, findings)
	return OutputRecord{
		LineNumber: line,
		Response: models.EvaluationResponse{
			Status:  "success",
			Message: "Evaluation of the outline completed",
			Results: results,
			Score:   score,
		},
	}
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "xml", newTestLogger()); err == nil {
		t.Error("expected an error for unsupported format")
	}
}

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, "jsonl", newTestLogger())
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	if err := writer.Write(outputRecord(1, 92, 1)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := writer.Write(outputRecord(2, 100, 0)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}

	var record OutputRecord
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("output line is not valid JSON: %v", err)
	}
	if record.LineNumber != 1 || record.Response.Score != 92 {
		t.Errorf("unexpected first record: %+v", record)
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, "summary", newTestLogger())
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	writer.Write(outputRecord(1, 92, 2))
	writer.Write(outputRecord(2, 100, 0))
	writer.Write(outputRecord(3, 60, 5))
	if err := writer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var report summaryReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}

	if report.Documents != 3 {
		t.Errorf("expected 3 documents, got %d", report.Documents)
	}
	if report.Findings != 7 {
		t.Errorf("expected 7 findings, got %d", report.Findings)
	}
	if report.MinScore != 60 || report.MaxScore != 100 {
		t.Errorf("unexpected score range: min=%d max=%d", report.MinScore, report.MaxScore)
	}
	if report.AverageScore != 84 {
		t.Errorf("expected average 84, got %f", report.AverageScore)
	}
}

func TestWriter_SummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	writer, _ := NewWriter(&buf, "summary", newTestLogger())
	if err := writer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var report summaryReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if report.Documents != 0 || report.MinScore != 0 {
		t.Errorf("unexpected empty report: %+v", report)
	}
}
