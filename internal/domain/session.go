package domain

import (
	"sort"
	"time"
)

// DefaultWorkspace is the workspace a session belongs to when none is set
const DefaultWorkspace = "Default"

// LocalLabel is the label shown for sessions that only exist on this machine
const LocalLabel = "Local"

// Session represents a terminal session record (domain entity)
type Session struct {
	Command            string
	CreatedAt          time.Time
	HasActiveChildren  bool
	ID                 string
	IsActive           bool
	LocalOnly          bool
	ParentSessionID    string
	TemplateBadgeLabel string
	TemplateName       string
	Title              string
	WorkingDirectory   string
	Workspace          string
	WorkspaceOrder     *int
}

// EffectiveWorkspace returns the session workspace, falling back to "Default"
func (s Session) EffectiveWorkspace() string {
	if s.Workspace == "" {
		return DefaultWorkspace
	}
	return s.Workspace
}

// OrderKey returns the manual order bucket of the session's own workspace
func (s Session) OrderKey() WorkspaceKey {
	return NamedWorkspace(s.EffectiveWorkspace())
}

// IsChild reports whether the session is nested under a parent session.
// Children never appear in top-level lists.
func (s Session) IsChild() bool {
	return s.ParentSessionID != ""
}

// IsRunning reports whether the session counts as active for status filtering
func (s Session) IsRunning() bool {
	return s.IsActive || s.HasActiveChildren
}

// IsTerminated reports whether the session process itself has exited
func (s Session) IsTerminated() bool {
	return !s.IsActive
}

// DisplayTitle returns the title, or the session ID when the title is empty
func (s Session) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// HasTemplate reports whether the session resolves to a non-empty label
func (s Session) HasTemplate() bool {
	return EffectiveLabel(s) != ""
}

// EffectiveLabel resolves the single label used for template filtering,
// sorting and display badges.
func EffectiveLabel(s Session) string {
	if s.LocalOnly {
		return LocalLabel
	}
	if s.TemplateBadgeLabel != "" {
		return s.TemplateBadgeLabel
	}
	return s.TemplateName
}

// SessionCollection represents a collection of sessions with ordering
type SessionCollection struct {
	OrderedIDs []string
	Sessions   map[string]Session
}

// NewSessionCollection builds a collection that keeps the slice order
func NewSessionCollection(sessions []Session) *SessionCollection {
	c := &SessionCollection{
		OrderedIDs: make([]string, 0, len(sessions)),
		Sessions:   make(map[string]Session, len(sessions)),
	}
	for _, s := range sessions {
		if _, exists := c.Sessions[s.ID]; !exists {
			c.OrderedIDs = append(c.OrderedIDs, s.ID)
		}
		c.Sessions[s.ID] = s
	}
	return c
}

// Lookup returns the session with the given ID
func (c *SessionCollection) Lookup(id string) (Session, bool) {
	if c == nil || c.Sessions == nil {
		return Session{}, false
	}
	s, ok := c.Sessions[id]
	return s, ok
}

// Len returns the number of sessions in the collection
func (c *SessionCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Sessions)
}

// Slice returns the sessions in collection order. IDs listed in OrderedIDs
// come first; sessions missing from OrderedIDs follow, sorted by ID.
func (c *SessionCollection) Slice() []Session {
	if c == nil || len(c.Sessions) == 0 {
		return []Session{}
	}

	result := make([]Session, 0, len(c.Sessions))
	seen := make(map[string]bool, len(c.Sessions))
	for _, id := range c.OrderedIDs {
		if seen[id] {
			continue
		}
		if s, ok := c.Sessions[id]; ok {
			result = append(result, s)
			seen[id] = true
		}
	}

	if len(result) == len(c.Sessions) {
		return result
	}

	var unordered []string
	for id := range c.Sessions {
		if !seen[id] {
			unordered = append(unordered, id)
		}
	}
	sort.Strings(unordered)
	for _, id := range unordered {
		result = append(result, c.Sessions[id])
	}
	return result
}

// IDSet is a set of session IDs (pinned sessions, sticky sessions)
type IDSet map[string]struct{}

// NewIDSet creates a set containing the given IDs
func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Sorted returns the IDs in lexical order
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SessionIDs extracts the IDs of the given sessions, keeping order
func SessionIDs(sessions []Session) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}
