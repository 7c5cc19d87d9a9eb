package services

import "github.com/renato0307/termdock/internal/domain"

// ListState is the snapshot a list view is resolved from
type ListState struct {
	// ActiveSessionID is the selected session; it stays visible even when terminated
	ActiveSessionID string
	Criteria        domain.FilterCriteria
	// FilteredIDs is an ordered overlay (e.g. content search results).
	// Nil means no overlay; an empty non-nil slice is an overlay with no hits.
	FilteredIDs []string
	Pinned      domain.IDSet
	Sessions    *domain.SessionCollection
	Sticky      domain.IDSet
}

// VisibleOptions carries caller-supplied ordering input
type VisibleOptions struct {
	ManualOrder []string
}

// ListQuery describes one list resolution requested by a view
type ListQuery struct {
	ActiveSessionID string
	Criteria        domain.FilterCriteria
	// CurrentWorkspace is the workspace the caller is looking at, used to pick the manual order bucket
	CurrentWorkspace string
	FilteredIDs      []string
}

// ListResult is a resolved list view together with the snapshot it came from
type ListResult struct {
	State   ListState
	Visible []domain.Session
}

// AddSessionParams contains parameters for registering a new session
type AddSessionParams struct {
	Command            string
	ID                 string
	Inactive           bool
	LocalOnly          bool
	ParentSessionID    string
	TemplateBadgeLabel string
	TemplateName       string
	Title              string
	WorkingDirectory   string
	Workspace          string
	WorkspaceOrder     *int
}
