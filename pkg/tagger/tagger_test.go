package tagger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Suggester {
	t.Helper()
	s, err := New(DefaultRules())
	require.NoError(t, err)
	return s
}

func TestSuggestKnownKeywords(t *testing.T) {
	s := newDefault(t)

	tags := s.Suggest("Team meeting notes")
	assert.Contains(t, tags, "meetings")
	assert.Contains(t, tags, "work")
}

func TestSuggestNoKeywords(t *testing.T) {
	s := newDefault(t)

	tags := s.Suggest("nothing topical in here")
	require.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestSuggestDeterministic(t *testing.T) {
	s := newDefault(t)

	content := "project meeting about a research task idea"
	first := s.Suggest(content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Suggest(content))
	}
}

func TestSuggestOrderFollowsFirstMatch(t *testing.T) {
	s := newDefault(t)

	// "meeting" appears before "project": its tags come first, and the
	// shared "work" tag is claimed by the earlier trigger.
	tags := s.Suggest("meeting for the new project")
	assert.Equal(t, []string{"meetings", "work", "projects"}, tags)

	// Reversed trigger order reverses the result.
	tags = s.Suggest("project kickoff meeting")
	assert.Equal(t, []string{"projects", "work", "meetings"}, tags)
}

func TestSuggestSubstringInsideLongerWord(t *testing.T) {
	s := newDefault(t)

	// Substring matching is the documented behavior: "task" is embedded in
	// "multitasking" and still fires.
	tags := s.Suggest("I am terrible at multitasking")
	assert.Contains(t, tags, "tasks")
	assert.Contains(t, tags, "todo")
}

func TestSuggestCaseInsensitive(t *testing.T) {
	s := newDefault(t)

	assert.Equal(t, s.Suggest("RESEARCH LOG"), s.Suggest("research log"))
	assert.Contains(t, s.Suggest("RESEARCH LOG"), "learning")
}

func TestSuggestRepeatedTriggerCountsOnce(t *testing.T) {
	s := newDefault(t)

	tags := s.Suggest("meeting after meeting after meeting")
	assert.Equal(t, []string{"meetings", "work"}, tags)
}

func TestLoadRulesLayersOverDefaults(t *testing.T) {
	doc := `
rules:
  - trigger: standup
    tags: [meetings, daily]
`
	extra, err := LoadRules(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, extra, 1)

	s, err := New(append(DefaultRules(), extra...))
	require.NoError(t, err)

	tags := s.Suggest("standup at nine")
	assert.Equal(t, []string{"meetings", "daily"}, tags)

	// Built-ins still apply.
	assert.Contains(t, s.Suggest("standup then project review"), "projects")
}

func TestLoadRulesRejectsMalformed(t *testing.T) {
	_, err := LoadRules(strings.NewReader("rules:\n  - tags: [a]\n"))
	assert.Error(t, err)

	_, err = LoadRules(strings.NewReader("rules:\n  - trigger: x\n"))
	assert.Error(t, err)
}

func TestDuplicateTriggersMerge(t *testing.T) {
	rules := Rules{
		{Trigger: "gym", Tags: []string{"health"}},
		{Trigger: "gym", Tags: []string{"routine", "health"}},
	}
	s, err := New(rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"health", "routine"}, s.Suggest("gym day"))
}

func TestEmptyRuleset(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	tags := s.Suggest("meeting")
	require.NotNil(t, tags)
	assert.Empty(t, tags)
}
