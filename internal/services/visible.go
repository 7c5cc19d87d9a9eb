package services

import (
	"sort"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
)

// ComputeVisibleSessions resolves the ordered list a view displays.
//
// With an overlay (state.FilteredIDs non-nil) the overlay IDs form the
// candidate set and the free-text search is ignored. A non-empty manual order
// replaces the configured sort: pinned first, then manual position, then
// newest first for sessions the manual order does not mention.
func (f *SessionFilterService) ComputeVisibleSessions(state ListState, opts VisibleOptions) []domain.Session {
	if state.Sessions == nil {
		logging.Logger.Debug("No session collection to resolve")
		return []domain.Session{}
	}

	criteria := state.Criteria.Normalize()

	var candidates []domain.Session
	if state.FilteredIDs != nil {
		candidates = make([]domain.Session, 0, len(state.FilteredIDs))
		for _, id := range state.FilteredIDs {
			if s, ok := state.Sessions.Lookup(id); ok {
				candidates = append(candidates, s)
			}
		}
		criteria = criteria.WithSearch("")
	} else {
		candidates = state.Sessions.Slice()
	}

	filtered := f.Filter(candidates, criteria, state.Pinned)

	if index := manualOrderIndex(opts.ManualOrder); len(index) > 0 {
		return sortByManualOrder(filtered, state.Pinned, index)
	}
	return f.Sort(filtered, state.Pinned, criteria.SortBy, criteria.SortOrder)
}

// ProjectSticky resolves the visible list and re-inserts the active session
// and sticky sessions that the current filters hide. Extras keep the position
// they would have with the status filter relaxed to "all".
func (f *SessionFilterService) ProjectSticky(state ListState, opts VisibleOptions) []domain.Session {
	visible := f.ComputeVisibleSessions(state, opts)

	activeTerminated := false
	if state.ActiveSessionID != "" {
		if s, ok := state.Sessions.Lookup(state.ActiveSessionID); ok && s.IsTerminated() {
			activeTerminated = true
		}
	}
	if len(state.Sticky) == 0 && !activeTerminated {
		return visible
	}

	allState := state
	allState.Criteria = state.Criteria.WithStatus(domain.StatusAll)
	allView := f.ComputeVisibleSessions(allState, opts)

	target := domain.NewIDSet(domain.SessionIDs(visible)...)
	for id := range state.Sticky {
		target.Add(id)
	}
	if state.ActiveSessionID != "" {
		target.Add(state.ActiveSessionID)
	}

	result := make([]domain.Session, 0, len(target))
	for _, s := range allView {
		if target.Has(s.ID) {
			result = append(result, s)
		}
	}

	logging.Logger.Debug("Sticky projection applied",
		"visible", len(visible),
		"projected", len(result),
		"sticky", len(state.Sticky))
	return result
}

// manualOrderIndex maps each ID to its first position, skipping blanks
func manualOrderIndex(order []string) map[string]int {
	index := make(map[string]int, len(order))
	for i, id := range order {
		if id == "" {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = i
		}
	}
	return index
}

func sortByManualOrder(sessions []domain.Session, pinned domain.IDSet, index map[string]int) []domain.Session {
	result := make([]domain.Session, len(sessions))
	copy(result, sessions)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]

		if ap, bp := pinned.Has(a.ID), pinned.Has(b.ID); ap != bp {
			return ap
		}

		ai, aok := index[a.ID]
		bi, bok := index[b.ID]
		switch {
		case aok && bok:
			return ai < bi
		case aok:
			return true
		case bok:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return result
}
