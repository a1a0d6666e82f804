// Package extractor projects document fragments into evaluation targets.
// Every scope gets its own projection: the payload is what the oracle sees,
// the display text is what ends up in the report.
package extractor

import (
	"fmt"
	"strings"

	"github.com/outline-tools/outline-critic/internal/models"
	"github.com/outline-tools/outline-critic/internal/sentence"
)

// displayLimit bounds the whole-document display text in the report.
const displayLimit = 200

// Target is one fragment ready for evaluation.
type Target struct {
	// Display is the report-facing text for the fragment.
	Display string
	// Payload is the labeled projection substituted into the prompt.
	Payload string
}

// SentenceTargets returns one target per sentence drawn from summary and
// message content. Bodies are excluded from the rhetorical check.
func SentenceTargets(doc models.Document) []Target {
	var texts []string
	for _, summary := range doc.Summaries {
		texts = append(texts, summary.Content)
		for _, message := range summary.Messages {
			texts = append(texts, message.Content)
		}
	}

	var targets []Target
	for _, text := range texts {
		for _, s := range sentence.Split(text) {
			targets = append(targets, Target{
				Display: sanitize(s),
				Payload: fmt.Sprintf("Target text: %s", s),
			})
		}
	}
	return targets
}

// DocumentTarget serializes the whole document as tagged lines, one per
// summary, message and body, with the title up front when present.
func DocumentTarget(doc models.Document) Target {
	var b strings.Builder

	if doc.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n\n", doc.Title)
	}

	for i, summary := range doc.Summaries {
		fmt.Fprintf(&b, "Summary %d: %s\n", i+1, summary.Content)
		for j, message := range summary.Messages {
			fmt.Fprintf(&b, "  Message %d: %s\n", j+1, message.Content)
			for k, body := range message.Bodies {
				fmt.Fprintf(&b, "    Body %d: %s\n", k+1, body.Content)
			}
		}
	}
	b.WriteString("\n")

	full := b.String()
	return Target{
		Display: truncate(sanitize(full), displayLimit),
		Payload: full,
	}
}

// AllSummariesTarget joins every summary into one fragment. The second
// return value is false when the document has no summaries.
func AllSummariesTarget(doc models.Document) (Target, bool) {
	if len(doc.Summaries) == 0 {
		return Target{}, false
	}

	contents := make([]string, 0, len(doc.Summaries))
	var payload strings.Builder
	payload.WriteString("Summary list:\n")
	for i, summary := range doc.Summaries {
		contents = append(contents, summary.Content)
		if i > 0 {
			payload.WriteString("\n\n")
		}
		fmt.Fprintf(&payload, "Summary %d: %s", i+1, summary.Content)
	}

	return Target{
		Display: sanitize(strings.Join(contents, "\n")),
		Payload: payload.String(),
	}, true
}

// SummaryPairTargets returns one target per adjacent summary pair.
// Documents with fewer than two summaries yield nothing.
func SummaryPairTargets(doc models.Document) []Target {
	if len(doc.Summaries) < 2 {
		return nil
	}

	targets := make([]Target, 0, len(doc.Summaries)-1)
	for i := 1; i < len(doc.Summaries); i++ {
		previous := doc.Summaries[i-1].Content
		current := doc.Summaries[i].Content
		targets = append(targets, Target{
			Display: sanitize(previous + "\n" + current),
			Payload: fmt.Sprintf("Previous summary: %s\n\nCurrent summary: %s", previous, current),
		})
	}
	return targets
}

// SummaryWithMessagesTargets returns one target per summary that carries at
// least one message. Summaries without messages are skipped.
func SummaryWithMessagesTargets(doc models.Document) []Target {
	var targets []Target
	for _, summary := range doc.Summaries {
		if len(summary.Messages) == 0 {
			continue
		}
		messages := messageContents(summary)
		targets = append(targets, Target{
			Display: sanitize(summary.Content + "\n\n" + strings.Join(messages, "\n")),
			Payload: summaryMessagesPayload(summary.Content, messages),
		})
	}
	return targets
}

// MessagesUnderSummaryTargets returns one target per summary with messages,
// pairing the summary with its message block.
func MessagesUnderSummaryTargets(doc models.Document) []Target {
	var targets []Target
	for _, summary := range doc.Summaries {
		if len(summary.Messages) == 0 {
			continue
		}
		messages := messageContents(summary)
		targets = append(targets, Target{
			Display: sanitize(summary.Content + "\n" + strings.Join(messages, "\n")),
			Payload: summaryMessagesPayload(summary.Content, messages),
		})
	}
	return targets
}

// MessageWithBodiesTargets returns one target per message that carries at
// least one body. Messages without bodies are skipped.
func MessageWithBodiesTargets(doc models.Document) []Target {
	var targets []Target
	for _, summary := range doc.Summaries {
		for _, message := range summary.Messages {
			if len(message.Bodies) == 0 {
				continue
			}
			bodies := make([]string, 0, len(message.Bodies))
			for _, body := range message.Bodies {
				bodies = append(bodies, body.Content)
			}
			targets = append(targets, Target{
				Display: sanitize(message.Content + "\n" + strings.Join(bodies, "\n")),
				Payload: fmt.Sprintf("Message: %s\n\nBodies:\n%s", message.Content, bulleted(bodies)),
			})
		}
	}
	return targets
}

func messageContents(summary models.Summary) []string {
	contents := make([]string, 0, len(summary.Messages))
	for _, message := range summary.Messages {
		contents = append(contents, message.Content)
	}
	return contents
}

func summaryMessagesPayload(summary string, messages []string) string {
	return fmt.Sprintf("Summary: %s\n\nMessages:\n%s", summary, bulleted(messages))
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// sanitize strips control characters from report-facing text. Newlines and
// tabs survive; everything else below 0x20 and the C1 range is removed.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\t':
			return r
		}
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}

// truncate cuts display text to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
