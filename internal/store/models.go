// Package store provides blob-backed persistence for jotkit.
// The whole note collection is serialized as one JSON array and written to a
// single key in a key-value blob store; the presentation shell never sees
// partial state.
package store

// Note is the sole persisted entity: one unit of captured text plus the
// metadata derived once at creation time. Notes are immutable after creation.
type Note struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"` // RFC 3339 creation instant
	Tags      []string      `json:"tags"`
	Related   []RelatedNote `json:"related"`
}

// RelatedNote is a point-in-time snapshot of another note that shared a long
// word with this one when it was captured. It is an embedded value copy, not
// a live reference: the preview is never invalidated if the target later
// changes or disappears.
type RelatedNote struct {
	ID      int64  `json:"id"`
	Preview string `json:"preview"`
}

// Normalize replaces nil collections with empty ones so the wire format
// always carries [] rather than null. Blobs written by older shells may omit
// either field.
func (n *Note) Normalize() {
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Related == nil {
		n.Related = []RelatedNote{}
	}
}
