package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/termdock/internal/domain"
)

func threeSessions() *domain.SessionCollection {
	return domain.NewSessionCollection([]domain.Session{
		{ID: "a", CreatedAt: at(100)},
		{ID: "b", IsActive: true, CreatedAt: at(200)},
		{ID: "c", IsActive: true, CreatedAt: at(300)},
	})
}

func TestComputeVisibleSessions_NilCollection(t *testing.T) {
	f := NewSessionFilterService()

	result := f.ComputeVisibleSessions(ListState{Criteria: domain.DefaultFilterCriteria()}, VisibleOptions{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestComputeVisibleSessions_ManualOrderReplacesSort(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{Criteria: domain.DefaultFilterCriteria(), Sessions: threeSessions()}

	tests := []struct {
		name     string
		order    []string
		pinned   domain.IDSet
		expected []string
	}{
		{"full order", []string{"c", "a", "b"}, nil, []string{"c", "a", "b"}},
		{"pinned still first", []string{"c", "a", "b"}, domain.NewIDSet("b"), []string{"b", "c", "a"}},
		{"missing ids follow newest first", []string{"a"}, nil, []string{"a", "c", "b"}},
		{"blanks and duplicates", []string{"", "b", "a", "b"}, nil, []string{"b", "a", "c"}},
		{"unknown ids ignored", []string{"zzz", "a", "b", "c"}, nil, []string{"a", "b", "c"}},
		{"empty order uses sort", []string{}, nil, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state
			s.Pinned = tt.pinned
			result := f.ComputeVisibleSessions(s, VisibleOptions{ManualOrder: tt.order})
			assert.Equal(t, tt.expected, domain.SessionIDs(result))
		})
	}
}

func TestComputeVisibleSessions_OverlayIgnoresSearch(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria: domain.FilterCriteria{Search: "nomatch"},
		Sessions: domain.NewSessionCollection([]domain.Session{
			{ID: "s1", CreatedAt: at(100)},
			{ID: "s2", CreatedAt: at(200)},
		}),
	}

	assert.Empty(t, f.ComputeVisibleSessions(state, VisibleOptions{}))

	state.FilteredIDs = []string{"s2", "ghost"}
	result := f.ComputeVisibleSessions(state, VisibleOptions{})

	assert.Equal(t, []string{"s2"}, domain.SessionIDs(result))
}

func TestComputeVisibleSessions_EmptyOverlayHidesEverything(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria:    domain.DefaultFilterCriteria(),
		FilteredIDs: []string{},
		Sessions:    threeSessions(),
	}

	assert.Empty(t, f.ComputeVisibleSessions(state, VisibleOptions{}))
}

func TestComputeVisibleSessions_OverlayStillFilters(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria:    domain.FilterCriteria{Status: domain.StatusActive},
		FilteredIDs: []string{"a", "b"},
		Sessions:    threeSessions(),
	}

	result := f.ComputeVisibleSessions(state, VisibleOptions{})

	assert.Equal(t, []string{"b"}, domain.SessionIDs(result))
}

func TestProjectSticky_KeepsStickyInPlace(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria: domain.FilterCriteria{Status: domain.StatusActive, SortOrder: domain.SortAsc},
		Sessions: threeSessions(),
	}

	assert.Equal(t, []string{"b", "c"}, domain.SessionIDs(f.ProjectSticky(state, VisibleOptions{})))

	state.Sticky = domain.NewIDSet("a")
	assert.Equal(t, []string{"a", "b", "c"}, domain.SessionIDs(f.ProjectSticky(state, VisibleOptions{})))
}

func TestProjectSticky_KeepsTerminatedActiveSession(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		ActiveSessionID: "a",
		Criteria:        domain.FilterCriteria{Status: domain.StatusActive},
		Sessions:        threeSessions(),
	}

	result := f.ProjectSticky(state, VisibleOptions{})

	assert.Equal(t, []string{"c", "b", "a"}, domain.SessionIDs(result))
}

func TestProjectSticky_FollowsManualOrder(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria: domain.FilterCriteria{Status: domain.StatusActive},
		Sessions: threeSessions(),
		Sticky:   domain.NewIDSet("a"),
	}

	result := f.ProjectSticky(state, VisibleOptions{ManualOrder: []string{"c", "a", "b"}})

	assert.Equal(t, []string{"c", "a", "b"}, domain.SessionIDs(result))
}

func TestProjectSticky_DoesNotBypassOtherFilters(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		Criteria: domain.FilterCriteria{Status: domain.StatusActive, Workspace: "Elsewhere"},
		Sessions: threeSessions(),
		Sticky:   domain.NewIDSet("a"),
	}

	assert.Empty(t, f.ProjectSticky(state, VisibleOptions{}))
}

func TestProjectSticky_FastPathMatchesResolver(t *testing.T) {
	f := NewSessionFilterService()
	state := ListState{
		ActiveSessionID: "b",
		Criteria:        domain.FilterCriteria{Status: domain.StatusActive},
		Sessions:        threeSessions(),
	}

	assert.Equal(t,
		f.ComputeVisibleSessions(state, VisibleOptions{}),
		f.ProjectSticky(state, VisibleOptions{}))
}
