package prompt

import (
	"strings"
	"testing"

	"github.com/outline-tools/outline-critic/internal/models"
)

func testConfig() *Config {
	return &Config{
		Default: "Evaluate the following text.\n\n{{.Data}}",
		Templates: map[string]string{
			"scqa_presence_all_summaries": "Check SCQA.\n\n{{.Data}}",
		},
	}
}

func TestNewStore_InvalidTemplate(t *testing.T) {
	cfg := &Config{
		Default:   "{{.Data}}",
		Templates: map[string]string{"broken": "{{.Data"},
	}
	if _, err := NewStore(cfg); err == nil {
		t.Error("expected error for unparsable template")
	}
}

func TestKey(t *testing.T) {
	got := Key(models.CriterionSCQAPresence, models.ScopeAllSummaries)
	if got != "scqa_presence_all_summaries" {
		t.Errorf("unexpected key: %q", got)
	}
}

func TestRender_SpecificTemplate(t *testing.T) {
	store, err := NewStore(testConfig())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	out, err := store.Render("scqa_presence_all_summaries", "Summary list:\nSummary 1: x")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(out, "Check SCQA.") {
		t.Errorf("expected specific template, got %q", out)
	}
	if !strings.Contains(out, "Summary 1: x") {
		t.Errorf("payload not substituted: %q", out)
	}
}

func TestRender_FallsBackToDefault(t *testing.T) {
	store, err := NewStore(testConfig())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	out, err := store.Render("unregistered_key", "payload text")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(out, "Evaluate the following text.") {
		t.Errorf("expected default template, got %q", out)
	}
	if !strings.Contains(out, "payload text") {
		t.Errorf("payload not substituted: %q", out)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing default template")
	}
}
