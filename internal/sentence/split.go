// Package sentence splits outline text into sentences on the full-width
// terminators used in the documents this service evaluates.
package sentence

import "strings"

// terminators is the fixed set of sentence-ending punctuation. Splits
// happen immediately after any of these runes.
var terminators = map[rune]bool{
	'。': true,
	'．': true,
	'！': true,
	'？': true,
}

// Split breaks text into sentences, cutting after each terminator rune.
// Whitespace-only fragments are dropped, so splitting a single already
// terminated sentence returns that sentence unchanged.
func Split(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if terminators[r] {
			if s := current.String(); strings.TrimSpace(s) != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := current.String(); strings.TrimSpace(s) != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
