// Package prompt maps a criterion and scope to the text template sent to
// the oracle. Unregistered keys fall back to a default template.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/outline-tools/outline-critic/internal/models"
)

// templateData carries the single substitutable placeholder every prompt
// template exposes.
type templateData struct {
	Data string
}

// Store holds parsed prompt templates.
type Store struct {
	defaultTmpl *template.Template
	templates   map[string]*template.Template
}

// NewStore parses every template in the config. A template that fails to
// parse is a startup error, not a runtime one.
func NewStore(cfg *Config) (*Store, error) {
	defaultTmpl, err := template.New("default").Parse(cfg.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default prompt template: %w", err)
	}

	templates := make(map[string]*template.Template, len(cfg.Templates))
	for key, text := range cfg.Templates {
		tmpl, err := template.New(key).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template %s: %w", key, err)
		}
		templates[key] = tmpl
	}

	return &Store{
		defaultTmpl: defaultTmpl,
		templates:   templates,
	}, nil
}

// Key derives the lookup key for a criterion and scope pair.
func Key(criterion models.Criterion, scope models.Scope) string {
	return fmt.Sprintf("%s_%s", criterion, scope)
}

// Has reports whether a specific template is registered for key.
func (s *Store) Has(key string) bool {
	_, ok := s.templates[key]
	return ok
}

// Render executes the template registered under key with the oracle payload
// substituted, falling back to the default template for unknown keys.
func (s *Store) Render(key string, payload string) (string, error) {
	tmpl, ok := s.templates[key]
	if !ok {
		tmpl = s.defaultTmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Data: payload}); err != nil {
		return "", fmt.Errorf("prompt template %s execution failed: %w", key, err)
	}
	return buf.String(), nil
}
