// Package discovery tracks recurring vocabulary across saved notes and
// promotes it to candidate tags. It complements the static keyword ruleset:
// the ruleset knows about five topics, the registry notices the words a
// particular user actually keeps writing.
package discovery

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/orsinium-labs/stopwords"
)

// CandidateStatus tracks the lifecycle of a candidate tag.
type CandidateStatus int

const (
	StatusWatching CandidateStatus = iota
	StatusPromoted
	StatusIgnored
)

// minTokenLen matches the related-note finder: only words longer than this
// carry topical signal.
const minTokenLen = 4

// stats tracks one watched token.
type stats struct {
	count  int             // distinct notes the token appeared in
	status CandidateStatus
	seen   map[int64]bool // note IDs already counted
}

// Registry watches note vocabulary and promotes recurring tokens.
// Not safe for concurrent use; the engine serializes access.
type Registry struct {
	tokens             map[string]*stats
	PromotionThreshold int
	ignored            map[string]bool      // caller-added ignores
	stopwordChecker    *stopwords.Stopwords // robust English stopwords
}

// NewRegistry creates a registry that promotes a token once it has appeared
// in threshold distinct notes.
func NewRegistry(threshold int) *Registry {
	if threshold < 1 {
		threshold = 1
	}
	return &Registry{
		tokens:             make(map[string]*stats),
		PromotionThreshold: threshold,
		ignored:            make(map[string]bool),
		stopwordChecker:    stopwords.MustGet("en"),
	}
}

// Ignore suppresses a word permanently. Already-promoted candidates are
// demoted.
func (r *Registry) Ignore(word string) {
	key := strings.ToLower(strings.TrimSpace(word))
	r.ignored[key] = true
	if s, ok := r.tokens[key]; ok {
		s.status = StatusIgnored
	}
}

// Observe feeds one saved note's content into the registry. Each token is
// counted at most once per note, so pasting a word fifty times into one note
// does not fabricate a trend.
func (r *Registry) Observe(noteID int64, content string) {
	for _, token := range strings.Fields(strings.ToLower(content)) {
		token = strings.Trim(token, ".,;:!?\"'()[]")
		if utf8.RuneCountInString(token) <= minTokenLen {
			continue
		}
		if r.ignored[token] {
			continue
		}
		if r.stopwordChecker != nil && r.stopwordChecker.Contains(token) {
			continue
		}

		s, exists := r.tokens[token]
		if !exists {
			s = &stats{seen: make(map[int64]bool)}
			r.tokens[token] = s
		}
		if s.seen[noteID] {
			continue
		}
		s.seen[noteID] = true
		s.count++

		if s.status == StatusWatching && s.count >= r.PromotionThreshold {
			s.status = StatusPromoted
		}
	}
}

// Candidate is a public view of a watched token.
type Candidate struct {
	Token  string          `json:"token"`
	Count  int             `json:"count"`
	Status CandidateStatus `json:"status"`
}

// Candidates returns all non-ignored tokens, promoted first, then by count
// descending, then alphabetically for a stable order.
func (r *Registry) Candidates() []Candidate {
	out := []Candidate{}
	for token, s := range r.tokens {
		if s.status == StatusIgnored {
			continue
		}
		out = append(out, Candidate{Token: token, Count: s.count, Status: s.status})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status == StatusPromoted
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}

// Promoted returns just the promoted tokens, in Candidates order.
func (r *Registry) Promoted() []string {
	out := []string{}
	for _, c := range r.Candidates() {
		if c.Status == StatusPromoted {
			out = append(out, c.Token)
		}
	}
	return out
}
