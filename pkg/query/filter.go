// Package query filters the note collection by search phrase and selected
// tags for the shell's list view.
package query

import (
	"sort"
	"strings"

	"github.com/kittclouds/jotkit/internal/store"
)

// Filter returns the notes matching both criteria, preserving input order:
//
//   - text: every whitespace term of phrase must occur as a substring of the
//     note's lower-cased content (conjunctive). An empty phrase matches all.
//   - tags: with an empty selection all notes pass; otherwise the note needs
//     at least one selected tag (disjunctive).
func Filter(notes []store.Note, phrase string, selected []string) []store.Note {
	terms := strings.Fields(strings.ToLower(phrase))

	selectedSet := make(map[string]bool, len(selected))
	for _, tag := range selected {
		selectedSet[tag] = true
	}

	out := []store.Note{}
	for _, note := range notes {
		if matchesTerms(note, terms) && matchesTags(note, selectedSet) {
			out = append(out, note)
		}
	}
	return out
}

func matchesTerms(note store.Note, terms []string) bool {
	content := strings.ToLower(note.Content)
	for _, term := range terms {
		if !strings.Contains(content, term) {
			return false
		}
	}
	return true
}

func matchesTags(note store.Note, selected map[string]bool) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range note.Tags {
		if selected[tag] {
			return true
		}
	}
	return false
}

// CollectTags returns the deduplicated, sorted union of all tags across
// notes. The shell uses it to populate the tag-filter choices.
func CollectTags(notes []store.Note) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, note := range notes {
		for _, tag := range note.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}
