// Package engine is the surface the presentation shell calls into. It owns
// the hydrated note collection, wires the tag suggester, related-note finder
// and query filter together on save, and keeps the current search state.
package engine

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kittclouds/jotkit/internal/store"
	"github.com/kittclouds/jotkit/pkg/discovery"
	"github.com/kittclouds/jotkit/pkg/query"
	"github.com/kittclouds/jotkit/pkg/related"
	"github.com/kittclouds/jotkit/pkg/tagger"
)

// ErrEmptyContent rejects saves whose content is empty after trimming.
var ErrEmptyContent = errors.New("content cannot be empty")

// DefaultPromotionThreshold: distinct notes a word must recur in before the
// discovery registry offers it as a candidate tag.
const DefaultPromotionThreshold = 3

// Engine holds the process-wide note state.
// Thread-safe for concurrent shell callbacks.
type Engine struct {
	mu sync.RWMutex

	notes     *store.NoteStore
	suggester *tagger.Suggester
	finder    *related.Finder
	registry  *discovery.Registry
	log       zerolog.Logger

	threshold int

	collection []store.Note
	phrase     string
	selected   map[string]bool
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	rules     tagger.Rules
	log       zerolog.Logger
	threshold int
}

// WithRules appends extra tag rules after the built-in ruleset.
func WithRules(rules tagger.Rules) Option {
	return func(o *options) { o.rules = append(o.rules, rules...) }
}

// WithLogger sets the observability sink.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithPromotionThreshold overrides the discovery promotion threshold.
func WithPromotionThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// New creates an Engine over the given note store. Call Hydrate before use.
func New(notes *store.NoteStore, opts ...Option) (*Engine, error) {
	o := options{
		rules:     tagger.DefaultRules(),
		log:       zerolog.Nop(),
		threshold: DefaultPromotionThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}

	suggester, err := tagger.New(o.rules)
	if err != nil {
		return nil, err
	}

	return &Engine{
		notes:      notes,
		suggester:  suggester,
		finder:     related.New(),
		registry:   discovery.NewRegistry(o.threshold),
		log:        o.log,
		threshold:  o.threshold,
		collection: []store.Note{},
		selected:   make(map[string]bool),
	}, nil
}

// Hydrate loads the persisted collection once at startup and replays it into
// the discovery registry. Load fails soft, so Hydrate cannot fail; a broken
// blob just means an empty store.
func (e *Engine) Hydrate() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.collection = e.notes.Load()
	e.registry = discovery.NewRegistry(e.threshold)
	for _, note := range e.collection {
		e.registry.Observe(note.ID, note.Content)
	}
	e.log.Debug().Int("notes", len(e.collection)).Msg("hydrated")
	return len(e.collection)
}

// SaveNote captures new content: suggests tags, snapshots related notes from
// the pre-save corpus, prepends the new note and persists the collection.
// A persistence failure is returned to the caller but leaves the in-memory
// prepend in place; the operation failed, the process carries on.
func (e *Engine) SaveNote(content string) (store.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return store.Note{}, ErrEmptyContent
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	note := store.Note{
		ID:        e.notes.NextID(e.collection),
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Tags:      e.suggester.Suggest(content),
		// Related is computed against the corpus before the append, so a
		// note never relates to itself.
		Related: e.finder.Find(content, e.collection),
	}

	e.collection = e.notes.Append(note, e.collection)
	e.registry.Observe(note.ID, content)

	if err := e.notes.Save(e.collection); err != nil {
		e.log.Error().Err(err).Int64("id", note.ID).Msg("persist failed")
		return note, err
	}
	return note, nil
}

// Search sets the current search phrase.
func (e *Engine) Search(phrase string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phrase = phrase
}

// ToggleTag flips a tag in the current selection.
func (e *Engine) ToggleTag(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected[tag] {
		delete(e.selected, tag)
	} else {
		e.selected[tag] = true
	}
}

// Visible returns the notes matching the current phrase and tag selection,
// newest first.
func (e *Engine) Visible() []store.Note {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return query.Filter(e.collection, e.phrase, e.selectedTagsLocked())
}

// Notes returns the full collection, newest first.
func (e *Engine) Notes() []store.Note {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]store.Note, len(e.collection))
	copy(out, e.collection)
	return out
}

// AllTags returns the sorted union of tags across the collection.
func (e *Engine) AllTags() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return query.CollectTags(e.collection)
}

// SelectedTags returns the current tag selection, sorted.
func (e *Engine) SelectedTags() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selectedTagsLocked()
}

// CandidateTags returns discovery's promoted vocabulary: words recurring
// across enough notes to be worth offering as filter tags.
func (e *Engine) CandidateTags() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.Promoted()
}

// Clear destroys the store: empties the collection, deletes the blob and
// resets search state and discovery.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.collection = []store.Note{}
	e.phrase = ""
	e.selected = make(map[string]bool)
	e.registry = discovery.NewRegistry(e.threshold)
	return e.notes.Clear()
}

func (e *Engine) selectedTagsLocked() []string {
	out := make([]string, 0, len(e.selected))
	for tag := range e.selected {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
