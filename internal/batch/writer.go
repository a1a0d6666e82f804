package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Writer persists output records in one of the supported formats.
type Writer interface {
	Write(record OutputRecord) error
	Close() error
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (Writer, error) {
	switch format {
	case "jsonl":
		return &jsonlWriter{encoder: json.NewEncoder(output)}, nil
	case "summary":
		return &summaryWriter{output: output, minScore: -1, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonlWriter emits one JSON object per record.
type jsonlWriter struct {
	encoder *json.Encoder
}

func (w *jsonlWriter) Write(record OutputRecord) error {
	return w.encoder.Encode(record)
}

func (w *jsonlWriter) Close() error {
	return nil
}

// summaryWriter accumulates score statistics and writes a single report on
// Close instead of per-document output.
type summaryWriter struct {
	output    io.Writer
	documents int
	findings  int
	scoreSum  int
	minScore  int
	maxScore  int
	logger    *zerolog.Logger
}

type summaryReport struct {
	Documents    int     `json:"documents"`
	Findings     int     `json:"findings"`
	AverageScore float64 `json:"average_score"`
	MinScore     int     `json:"min_score"`
	MaxScore     int     `json:"max_score"`
}

func (w *summaryWriter) Write(record OutputRecord) error {
	w.documents++
	w.findings += len(record.Response.Results)
	w.scoreSum += record.Response.Score

	if w.minScore == -1 || record.Response.Score < w.minScore {
		w.minScore = record.Response.Score
	}
	if record.Response.Score > w.maxScore {
		w.maxScore = record.Response.Score
	}
	return nil
}

func (w *summaryWriter) Close() error {
	report := summaryReport{
		Documents: w.documents,
		Findings:  w.findings,
		MinScore:  w.minScore,
		MaxScore:  w.maxScore,
	}
	if w.documents > 0 {
		report.AverageScore = float64(w.scoreSum) / float64(w.documents)
	} else {
		report.MinScore = 0
	}

	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
