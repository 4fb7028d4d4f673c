// Package related discovers previously-stored notes that share vocabulary
// with newly captured text. Matching is lexical: lower-cased whitespace
// tokens, no stemming, no scoring. The corpus is scanned in order, so with a
// newest-first collection the most recent matches win.
package related

import (
	"strings"
	"unicode/utf8"

	"github.com/kittclouds/jotkit/internal/store"
)

const (
	// MaxResults caps the related snapshot per note.
	MaxResults = 3

	// PreviewLen is the preview truncation point, in runes.
	PreviewLen = 100

	// minWordLen: only words longer than this participate in matching.
	// Short words (articles, pronouns, most prepositions) relate everything
	// to everything.
	minWordLen = 4
)

// Finder scans a note corpus for lexical overlap.
type Finder struct{}

// New creates a Finder.
func New() *Finder {
	return &Finder{}
}

// Find returns up to MaxResults snapshots of corpus notes sharing at least
// one long word with content, in corpus order. Callers pass the corpus as it
// was before the new note is appended, so a note never matches itself.
// The result is empty, never nil.
func (f *Finder) Find(content string, corpus []store.Note) []store.RelatedNote {
	out := []store.RelatedNote{}

	words := longWords(content)
	if len(words) == 0 {
		return out
	}

	for _, note := range corpus {
		if matches(words, note.Content) {
			out = append(out, store.RelatedNote{
				ID:      note.ID,
				Preview: Preview(note.Content),
			})
			if len(out) == MaxResults {
				break
			}
		}
	}

	return out
}

// Preview truncates content to PreviewLen runes. The ellipsis is appended
// unconditionally, whether or not anything was cut — long-standing surface
// behavior the shell styles around, preserved as-is.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) > PreviewLen {
		runes = runes[:PreviewLen]
	}
	return string(runes) + "..."
}

// longWords returns the lower-cased whitespace tokens of content longer than
// minWordLen runes.
func longWords(content string) []string {
	fields := strings.Fields(strings.ToLower(content))
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) > minWordLen {
			out = append(out, w)
		}
	}
	return out
}

// matches reports whether any of words appears verbatim in the candidate's
// own lower-cased word list.
func matches(words []string, candidate string) bool {
	candidateWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(candidate)) {
		candidateWords[w] = true
	}
	for _, w := range words {
		if candidateWords[w] {
			return true
		}
	}
	return false
}
