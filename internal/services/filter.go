package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
)

// SessionFilterService filters, sorts and resolves session snapshots.
// It holds no state; every call works on the slices it is given and returns new ones.
type SessionFilterService struct{}

// NewSessionFilterService creates a new SessionFilterService
func NewSessionFilterService() *SessionFilterService {
	return &SessionFilterService{}
}

// Filter returns the top-level sessions matching every criterion, in input order.
// Child sessions are always dropped.
func (f *SessionFilterService) Filter(
	sessions []domain.Session,
	criteria domain.FilterCriteria,
	pinned domain.IDSet,
) []domain.Session {
	if sessions == nil {
		logging.Logger.Debug("Filter called without sessions")
		return []domain.Session{}
	}

	criteria = criteria.Normalize()
	result := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.IsChild() {
			continue
		}
		if domain.MatchesCriteria(s, criteria, pinned) {
			result = append(result, s)
		}
	}
	return result
}

// Sort returns a sorted copy of sessions.
// Pinned sessions always come first. Within one workspace, sessions that both
// carry a workspace order are compared by it. Everything else uses sortBy,
// reversed when sortOrder is desc.
func (f *SessionFilterService) Sort(
	sessions []domain.Session,
	pinned domain.IDSet,
	sortBy domain.SortBy,
	sortOrder domain.SortOrder,
) []domain.Session {
	result := make([]domain.Session, len(sessions))
	copy(result, sessions)

	compare := comparatorFor(sortBy)
	sign := 1
	if sortOrder == domain.SortDesc {
		sign = -1
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]

		if ap, bp := pinned.Has(a.ID), pinned.Has(b.ID); ap != bp {
			return ap
		}
		if c, ok := compareWorkspaceOrder(a, b); ok {
			return c < 0
		}
		return sign*compare(a, b) < 0
	})
	return result
}

// compareWorkspaceOrder applies only to two sessions of the same workspace
// that both carry a workspace order with different values.
func compareWorkspaceOrder(a, b domain.Session) (int, bool) {
	if a.WorkspaceOrder == nil || b.WorkspaceOrder == nil {
		return 0, false
	}
	if a.EffectiveWorkspace() != b.EffectiveWorkspace() {
		return 0, false
	}
	switch {
	case *a.WorkspaceOrder < *b.WorkspaceOrder:
		return -1, true
	case *a.WorkspaceOrder > *b.WorkspaceOrder:
		return 1, true
	}
	return 0, false
}

type sessionComparator func(a, b domain.Session) int

func comparatorFor(sortBy domain.SortBy) sessionComparator {
	switch sortBy {
	case domain.SortByTitle:
		// Collators keep internal buffers, so each sort gets its own
		c := collate.New(language.Und, collate.IgnoreCase)
		return func(a, b domain.Session) int {
			return c.CompareString(a.DisplayTitle(), b.DisplayTitle())
		}
	case domain.SortByStatus:
		return compareStatus
	default:
		return compareCreated
	}
}

func compareCreated(a, b domain.Session) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

// compareStatus ranks running sessions above terminated ones, so the default
// descending order lists running sessions first.
func compareStatus(a, b domain.Session) int {
	ar, br := a.IsRunning(), b.IsRunning()
	switch {
	case ar == br:
		return compareCreated(a, b)
	case ar:
		return 1
	default:
		return -1
	}
}
