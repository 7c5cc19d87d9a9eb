package cmd

import (
	"github.com/renato0307/termdock/internal/config"
	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/services"
)

// ListFlags are the filter, sort and scope flags shared by commands that
// resolve a list view
type ListFlags struct {
	Active           string   `help:"ID of the selected session; it stays visible even when terminated"`
	CurrentWorkspace string   `help:"Workspace being viewed; picks the manual order bucket (default from settings)"`
	Overlay          []string `help:"Ordered IDs from an external search; replaces free-text search" sep:","`
	PinnedOnly       bool     `help:"Only show pinned sessions"`
	Search           string   `help:"Case-insensitive text matched against id, command, directory, title and template" short:"s"`
	SortBy           string   `help:"Sort key: created, status or title (default from settings, then created)"`
	SortOrder        string   `help:"Sort direction: asc or desc (default from settings, then desc)"`
	Status           string   `help:"Status filter" enum:"all,active,inactive" default:"all"`
	Template         []string `help:"Template label filter, repeatable (_no_template_ matches sessions without one)" short:"t"`
	Workspace        string   `help:"Only show sessions of this workspace (all for every workspace)" short:"w"`
}

// query builds the list query, falling back to settings for unset flags
func (f ListFlags) query(settings *config.Settings) services.ListQuery {
	criteria := domain.DefaultFilterCriteria()

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = settings.DefaultSortBy
	}
	if sortBy != "" {
		criteria.SortBy = domain.SortBy(sortBy)
	}

	sortOrder := f.SortOrder
	if sortOrder == "" {
		sortOrder = settings.DefaultSortOrder
	}
	if sortOrder != "" {
		criteria.SortOrder = domain.SortOrder(sortOrder)
	}

	templates := f.Template
	if len(templates) == 0 {
		templates = settings.DefaultTemplates
	}

	criteria.PinnedOnly = f.PinnedOnly
	criteria.Search = f.Search
	criteria.Status = domain.StatusFilter(f.Status)
	criteria.Templates = templates
	criteria.Workspace = f.Workspace

	current := f.CurrentWorkspace
	if current == "" {
		current = settings.CurrentWorkspace
	}

	var overlay []string
	if len(f.Overlay) > 0 {
		overlay = f.Overlay
	}

	return services.ListQuery{
		ActiveSessionID:  f.Active,
		Criteria:         criteria.Normalize(),
		CurrentWorkspace: current,
		FilteredIDs:      overlay,
	}
}
