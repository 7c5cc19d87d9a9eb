package domain

import "strings"

// Workspace names that select every workspace instead of a single one
const (
	AllWorkspacesFilter = "all"
	AllWorkspacesLabel  = "All Workspaces"
)

// globalKeyEncoding is how the global key is written to storage
const globalKeyEncoding = "__global__"

// WorkspaceKey identifies a manual order bucket.
// The zero value is the global bucket, used when no single workspace is in scope.
type WorkspaceKey struct {
	name string
}

// GlobalWorkspace returns the key shared by every "all workspaces" view
func GlobalWorkspace() WorkspaceKey {
	return WorkspaceKey{}
}

// NamedWorkspace returns the key of a single workspace.
// Reserved names (see IsReservedWorkspace) yield the global key, so String
// and ParseWorkspaceKey always round-trip.
func NamedWorkspace(name string) WorkspaceKey {
	if IsReservedWorkspace(name) {
		return GlobalWorkspace()
	}
	return WorkspaceKey{name: name}
}

// IsReservedWorkspace reports whether name selects the global bucket and so
// cannot be used as the workspace of a session
func IsReservedWorkspace(name string) bool {
	switch name {
	case "", AllWorkspacesFilter, AllWorkspacesLabel, globalKeyEncoding:
		return true
	}
	return false
}

// NormalizeWorkspaceKey maps a raw workspace value to its bucket key.
// Empty, "all", "All Workspaces" and the storage encoding of the global key
// share the global key; anything else is used verbatim.
func NormalizeWorkspaceKey(raw string) WorkspaceKey {
	return NamedWorkspace(raw)
}

// ParseWorkspaceKey decodes a key produced by String
func ParseWorkspaceKey(stored string) WorkspaceKey {
	return NamedWorkspace(stored)
}

// IsGlobal reports whether the key is the global bucket
func (k WorkspaceKey) IsGlobal() bool {
	return k.name == ""
}

// Name returns the workspace name, empty for the global key
func (k WorkspaceKey) Name() string {
	return k.name
}

// String returns the storage encoding of the key
func (k WorkspaceKey) String() string {
	if k.IsGlobal() {
		return globalKeyEncoding
	}
	return k.name
}

// isAllWorkspaces reports whether a filter value places no workspace constraint
func isAllWorkspaces(workspace string) bool {
	trimmed := strings.TrimSpace(workspace)
	return trimmed == "" || trimmed == AllWorkspacesFilter
}
