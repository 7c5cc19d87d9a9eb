package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveLabel(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected string
	}{
		{"local only wins", Session{LocalOnly: true, TemplateBadgeLabel: "Badge", TemplateName: "tpl"}, "Local"},
		{"badge over template", Session{TemplateBadgeLabel: "Badge", TemplateName: "tpl"}, "Badge"},
		{"template name fallback", Session{TemplateName: "tpl"}, "tpl"},
		{"no template", Session{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveLabel(tt.session))
		})
	}
}

func TestSession_EffectiveWorkspace(t *testing.T) {
	assert.Equal(t, "Default", Session{}.EffectiveWorkspace())
	assert.Equal(t, "W", Session{Workspace: "W"}.EffectiveWorkspace())
}

func TestSession_OrderKey_UnsetEqualsDefault(t *testing.T) {
	assert.Equal(t, Session{Workspace: "Default"}.OrderKey(), Session{}.OrderKey())
	assert.False(t, Session{}.OrderKey().IsGlobal())
	assert.Equal(t, NamedWorkspace("W"), Session{Workspace: "W"}.OrderKey())
}

func TestSession_DisplayTitle(t *testing.T) {
	assert.Equal(t, "s1", Session{ID: "s1"}.DisplayTitle())
	assert.Equal(t, "build", Session{ID: "s1", Title: "build"}.DisplayTitle())
}

func TestSessionCollection_SliceKeepsOrderThenSortsStragglers(t *testing.T) {
	c := &SessionCollection{
		OrderedIDs: []string{"b", "missing", "a", "b"},
		Sessions: map[string]Session{
			"a": {ID: "a"},
			"b": {ID: "b"},
			"d": {ID: "d"},
			"c": {ID: "c"},
		},
	}

	assert.Equal(t, []string{"b", "a", "c", "d"}, SessionIDs(c.Slice()))
}

func TestSessionCollection_NilIsEmpty(t *testing.T) {
	var c *SessionCollection

	assert.Empty(t, c.Slice())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup("a")
	assert.False(t, ok)
}

func TestNewSessionCollection_LastDuplicateWins(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewSessionCollection([]Session{
		{ID: "a", Title: "first"},
		{ID: "b", CreatedAt: now},
		{ID: "a", Title: "second"},
	})

	assert.Equal(t, []string{"a", "b"}, c.OrderedIDs)
	s, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "second", s.Title)
}

func TestIDSet(t *testing.T) {
	set := NewIDSet("b", "", "a")

	assert.True(t, set.Has("a"))
	assert.False(t, set.Has(""))
	assert.Equal(t, []string{"a", "b"}, set.Sorted())

	var empty IDSet
	assert.False(t, empty.Has("a"))
}
