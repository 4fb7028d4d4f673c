// Package tagger maps raw note text to suggested tags via static
// keyword→tag rules. A single Aho-Corasick automaton built from all triggers
// scans the lower-cased content in one pass.
//
// Matching is deliberately coarse: a trigger matches anywhere as a substring,
// so "meeting" fires inside "meetings" and "task" inside "multitasking".
// That is surface behavior the shell documents, not a bug to fix here.
package tagger

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Suggester owns the compiled trigger automaton.
type Suggester struct {
	ac *ahocorasick.Automaton

	// Pattern index -> suggested tags (triggers may repeat across rules;
	// their tags are folded into one pattern entry, ruleset order kept).
	patternTags [][]string

	// Lower-cased trigger -> pattern index
	patternIndex map[string]int

	patterns []string
}

// New compiles a ruleset into a Suggester.
func New(rules Rules) (*Suggester, error) {
	s := &Suggester{
		patternIndex: make(map[string]int),
	}

	for _, rule := range rules {
		key := strings.ToLower(strings.TrimSpace(rule.Trigger))
		if key == "" {
			continue
		}

		idx, exists := s.patternIndex[key]
		if !exists {
			idx = len(s.patterns)
			s.patterns = append(s.patterns, key)
			s.patternIndex[key] = idx
			s.patternTags = append(s.patternTags, nil)
		}
		for _, tag := range rule.Tags {
			s.patternTags[idx] = appendUnique(s.patternTags[idx], tag)
		}
	}

	if len(s.patterns) == 0 {
		return s, nil
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(s.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	s.ac = automaton

	return s, nil
}

// Suggest returns the tags of every trigger occurring in content as a
// substring, ordered by each trigger's first match position, deduplicated.
// Deterministic for identical input; empty (never nil) when nothing matches.
func (s *Suggester) Suggest(content string) []string {
	tags := []string{}
	if s.ac == nil {
		return tags
	}

	haystack := []byte(strings.ToLower(content))

	// FindAllOverlapping so a trigger nested inside another still fires.
	matches := s.ac.FindAllOverlapping(haystack)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})

	seenPattern := make(map[int]bool, len(matches))
	seenTag := make(map[string]bool)
	for _, m := range matches {
		if seenPattern[m.PatternID] {
			continue
		}
		seenPattern[m.PatternID] = true

		for _, tag := range s.patternTags[m.PatternID] {
			if !seenTag[tag] {
				seenTag[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	return tags
}

// Triggers returns the compiled trigger keywords in ruleset order.
func (s *Suggester) Triggers() []string {
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

func appendUnique(slice []string, item string) []string {
	for _, s := range slice {
		if s == item {
			return slice
		}
	}
	return append(slice, item)
}
