package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBlobKey is the single key the note collection lives under.
const DefaultBlobKey = "jotkit-notes"

// NoteStore persists the ordered note collection as one JSON blob.
// Ordering is newest-first by insertion: Append puts the new note at the
// head and the collection is never re-sorted.
type NoteStore struct {
	blobs BlobStore
	key   string
	log   zerolog.Logger
}

// NewNoteStore creates a note store over the given blob store.
func NewNoteStore(blobs BlobStore, key string, log zerolog.Logger) *NoteStore {
	if key == "" {
		key = DefaultBlobKey
	}
	return &NoteStore{blobs: blobs, key: key, log: log}
}

// Load reads and decodes the persisted collection. It fails soft: a missing
// key or an unparseable blob yields an empty collection, with the cause
// logged rather than returned. The shell starts fresh either way.
func (s *NoteStore) Load() []Note {
	data, ok, err := s.blobs.Get(s.key)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("blob read failed, starting empty")
		return []Note{}
	}
	if !ok {
		return []Note{}
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("blob unparseable, starting empty")
		return []Note{}
	}

	for i := range notes {
		notes[i].Normalize()
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes
}

// Save serializes the full collection and overwrites the blob in a single
// write. Write failures are returned to the caller; they are fatal to the
// operation, not the process.
func (s *NoteStore) Save(notes []Note) error {
	// Normalize a copy; the caller's slice is never edited in place.
	out := make([]Note, len(notes))
	copy(out, notes)
	for i := range out {
		out[i].Normalize()
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.blobs.Put(s.key, data); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// Append returns a new slice with note prepended. The input slice is left
// untouched so reactive callers can detect the change by identity.
func (s *NoteStore) Append(note Note, notes []Note) []Note {
	out := make([]Note, 0, len(notes)+1)
	out = append(out, note)
	out = append(out, notes...)
	return out
}

// Clear removes the persisted blob entirely.
func (s *NoteStore) Clear() error {
	if err := s.blobs.Delete(s.key); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	return nil
}

// NextID derives a creation-time ID: the current Unix millisecond clock,
// bumped past the head note's ID when saves land inside the same tick.
// IDs therefore stay unique and monotonically increasing for the lifetime
// of the store.
func (s *NoteStore) NextID(notes []Note) int64 {
	id := time.Now().UnixMilli()
	if len(notes) > 0 && notes[0].ID >= id {
		id = notes[0].ID + 1
	}
	return id
}
