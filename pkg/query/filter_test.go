package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/jotkit/internal/store"
)

func fruitNotes() []store.Note {
	return []store.Note{
		{ID: 1, Content: "apples oranges", Tags: []string{"fruit"}},
		{ID: 2, Content: "bananas", Tags: []string{"fruit"}},
	}
}

func TestFilterIdentity(t *testing.T) {
	notes := fruitNotes()
	got := Filter(notes, "", nil)
	assert.Equal(t, notes, got)
}

func TestFilterTextSubstring(t *testing.T) {
	got := Filter(fruitNotes(), "apple", nil)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterTextConjunctive(t *testing.T) {
	got := Filter(fruitNotes(), "apples oranges", nil)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Every term must match; terms spanning different notes match nothing.
	assert.Empty(t, Filter(fruitNotes(), "apples bananas", nil))
}

func TestFilterTextCaseInsensitive(t *testing.T) {
	got := Filter(fruitNotes(), "APPLE", nil)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterTagsDisjunctive(t *testing.T) {
	assert.Len(t, Filter(fruitNotes(), "", []string{"fruit"}), 2)
	assert.Empty(t, Filter(fruitNotes(), "", []string{"unknown"}))
	assert.Len(t, Filter(fruitNotes(), "", []string{"unknown", "fruit"}), 2)
}

func TestFilterCombinesCriteria(t *testing.T) {
	notes := []store.Note{
		{ID: 1, Content: "grocery run", Tags: []string{"errands"}},
		{ID: 2, Content: "grocery budget", Tags: []string{"money"}},
	}

	got := Filter(notes, "grocery", []string{"money"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterPreservesOrder(t *testing.T) {
	notes := []store.Note{
		{ID: 3, Content: "pears"},
		{ID: 2, Content: "pears again"},
		{ID: 1, Content: "pears once more"},
	}
	got := Filter(notes, "pears", nil)
	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestCollectTags(t *testing.T) {
	notes := []store.Note{
		{ID: 1, Tags: []string{"work", "meetings"}},
		{ID: 2, Tags: []string{"todo", "work"}},
		{ID: 3, Tags: []string{}},
	}
	assert.Equal(t, []string{"meetings", "todo", "work"}, CollectTags(notes))
}

func TestCollectTagsEmpty(t *testing.T) {
	got := CollectTags(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
