package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/internal/config"
	"github.com/renato0307/termdock/internal/domain"
)

func TestListFlags_Query(t *testing.T) {
	settings := &config.Settings{
		CurrentWorkspace: "Work",
		DefaultSortBy:    "title",
		DefaultSortOrder: "asc",
		DefaultTemplates: config.StringArray{"node"},
	}

	tests := []struct {
		name     string
		flags    ListFlags
		settings *config.Settings
		check    func(t *testing.T, f ListFlags, settings *config.Settings)
	}{
		{
			name:     "defaults without settings",
			flags:    ListFlags{Status: "all"},
			settings: &config.Settings{},
			check: func(t *testing.T, f ListFlags, settings *config.Settings) {
				q := f.query(settings)
				assert.Equal(t, domain.SortByCreated, q.Criteria.SortBy)
				assert.Equal(t, domain.SortDesc, q.Criteria.SortOrder)
				assert.Empty(t, q.Criteria.Templates)
				assert.Empty(t, q.CurrentWorkspace)
				assert.Nil(t, q.FilteredIDs)
			},
		},
		{
			name:     "settings fill unset flags",
			flags:    ListFlags{Status: "all"},
			settings: settings,
			check: func(t *testing.T, f ListFlags, settings *config.Settings) {
				q := f.query(settings)
				assert.Equal(t, domain.SortByTitle, q.Criteria.SortBy)
				assert.Equal(t, domain.SortAsc, q.Criteria.SortOrder)
				assert.Equal(t, []string{"node"}, q.Criteria.Templates)
				assert.Equal(t, "Work", q.CurrentWorkspace)
			},
		},
		{
			name: "flags beat settings",
			flags: ListFlags{
				CurrentWorkspace: "Home",
				SortBy:           "status",
				SortOrder:        "desc",
				Status:           "active",
				Template:         []string{"go"},
			},
			settings: settings,
			check: func(t *testing.T, f ListFlags, settings *config.Settings) {
				q := f.query(settings)
				assert.Equal(t, domain.SortByStatus, q.Criteria.SortBy)
				assert.Equal(t, domain.SortDesc, q.Criteria.SortOrder)
				assert.Equal(t, domain.StatusActive, q.Criteria.Status)
				assert.Equal(t, []string{"go"}, q.Criteria.Templates)
				assert.Equal(t, "Home", q.CurrentWorkspace)
			},
		},
		{
			name:     "unknown sort degrades to default",
			flags:    ListFlags{SortBy: "size", Status: "all"},
			settings: &config.Settings{},
			check: func(t *testing.T, f ListFlags, settings *config.Settings) {
				assert.Equal(t, domain.SortByCreated, f.query(settings).Criteria.SortBy)
			},
		},
		{
			name:     "overlay is passed through in order",
			flags:    ListFlags{Overlay: []string{"c", "a"}, Active: "a", Status: "all"},
			settings: &config.Settings{},
			check: func(t *testing.T, f ListFlags, settings *config.Settings) {
				q := f.query(settings)
				assert.Equal(t, []string{"c", "a"}, q.FilteredIDs)
				assert.Equal(t, "a", q.ActiveSessionID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.flags, tt.settings)
		})
	}
}

func TestWriteSessions(t *testing.T) {
	sessions := []domain.Session{
		{ID: "a", Title: "alpha", IsActive: true, CreatedAt: time.Unix(100, 0), TemplateName: "node"},
		{ID: "b", IsActive: false, CreatedAt: time.Unix(200, 0), LocalOnly: true, Workspace: "W"},
	}
	pinned := domain.NewIDSet("b")
	sticky := domain.NewIDSet("a")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSessions(&buf, formatJSON, sessions, pinned, sticky))

		var views []sessionView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
		require.Len(t, views, 2)
		assert.Equal(t, "alpha", views[0].Title)
		assert.Equal(t, "running", views[0].Status)
		assert.Equal(t, "node", views[0].Template)
		assert.Equal(t, "Default", views[0].Workspace)
		assert.True(t, views[0].Sticky)
		assert.Equal(t, "b", views[1].Title)
		assert.Equal(t, "terminated", views[1].Status)
		assert.Equal(t, "Local", views[1].Template)
		assert.True(t, views[1].Pinned)
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSessions(&buf, formatJSON, nil, nil, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSessions(&buf, formatTable, sessions, pinned, sticky))
		out := buf.String()
		assert.Contains(t, out, "alpha")
		assert.Contains(t, out, "sticky")
		assert.Contains(t, out, "Total: 2 sessions")
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSessions(&buf, formatTOML, sessions, pinned, sticky))
		assert.Contains(t, buf.String(), "[[sessions]]")
	})
}

func TestWriteOrders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOrders(&buf, formatTable, []orderView{{Workspace: "Default"}}))
	assert.Contains(t, buf.String(), "No manual order set")

	buf.Reset()
	require.NoError(t, writeOrders(&buf, formatJSON, []orderView{{Workspace: "W", IDs: []string{"b", "a"}}}))
	var views []orderView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
	assert.Equal(t, []orderView{{Workspace: "W", IDs: []string{"b", "a"}}}, views)
}

func TestWorkspaceLabel(t *testing.T) {
	assert.Equal(t, "All Workspaces", workspaceLabel(domain.GlobalWorkspace()))
	assert.Equal(t, "W", workspaceLabel(domain.NamedWorkspace("W")))
}
