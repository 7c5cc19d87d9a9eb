package domain

import "strings"

// MatchesStatus tests a session against a status filter.
// A session with live children counts as active even if its own process exited.
func MatchesStatus(s Session, status StatusFilter) bool {
	switch status {
	case StatusActive:
		return s.IsRunning()
	case StatusInactive:
		return !s.IsActive && !s.HasActiveChildren
	default:
		return true
	}
}

// MatchesSearch tests a session against free text, case-insensitively.
// Blank queries match everything.
func MatchesSearch(s Session, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)

	for _, field := range []string{s.ID, s.Command, s.WorkingDirectory, s.Title, s.TemplateName} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchesTemplate tests the session label against a template filter.
// NoTemplateSentinel matches sessions without a label.
func MatchesTemplate(s Session, templates []string) bool {
	if len(templates) == 0 {
		return true
	}
	if len(templates) == 1 && (templates[0] == "" || templates[0] == AllTemplates) {
		return true
	}

	label := EffectiveLabel(s)
	for _, t := range templates {
		if label == "" {
			if t == NoTemplateSentinel {
				return true
			}
			continue
		}
		if t == label {
			return true
		}
	}
	return false
}

// MatchesPinned tests pinned membership when pinnedOnly is set
func MatchesPinned(s Session, pinnedOnly bool, pinned IDSet) bool {
	if !pinnedOnly {
		return true
	}
	return pinned.Has(s.ID)
}

// MatchesWorkspace compares the session workspace (defaulted) with the
// trimmed target. Empty and "all" targets match every session.
func MatchesWorkspace(s Session, workspace string) bool {
	if isAllWorkspaces(workspace) {
		return true
	}
	return s.EffectiveWorkspace() == strings.TrimSpace(workspace)
}

// MatchesCriteria reports whether every predicate passes for the session
func MatchesCriteria(s Session, c FilterCriteria, pinned IDSet) bool {
	return MatchesStatus(s, c.Status) &&
		MatchesSearch(s, c.Search) &&
		MatchesTemplate(s, c.Templates) &&
		MatchesPinned(s, c.PinnedOnly, pinned) &&
		MatchesWorkspace(s, c.Workspace)
}
