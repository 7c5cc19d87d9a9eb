package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

// SessionListService resolves list views from the stored session state
type SessionListService struct {
	filter    *SessionFilterService
	loader    ports.SessionStateLoader
	marks     ports.SessionMarkReader
	orders    *ManualOrderService
	publisher ports.VisibleOrderPublisher
}

// NewSessionListService creates a new SessionListService
func NewSessionListService(
	loader ports.SessionStateLoader,
	marks ports.SessionMarkReader,
	orders *ManualOrderService,
	filter *SessionFilterService,
	publisher ports.VisibleOrderPublisher,
) *SessionListService {
	return &SessionListService{
		filter:    filter,
		loader:    loader,
		marks:     marks,
		orders:    orders,
		publisher: publisher,
	}
}

// Snapshot loads sessions, pinned and sticky sets concurrently
func (s *SessionListService) Snapshot(ctx context.Context, query ListQuery) (ListState, error) {
	var (
		collection *domain.SessionCollection
		pinned     domain.IDSet
		sticky     domain.IDSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collection, err = s.loader.LoadState(gctx)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pinned, err = s.marks.ListPinned(gctx)
		if err != nil {
			return fmt.Errorf("failed to load pinned sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sticky, err = s.marks.ListSticky(gctx)
		if err != nil {
			return fmt.Errorf("failed to load sticky sessions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load list snapshot", "error", err)
		return ListState{}, err
	}

	return ListState{
		ActiveSessionID: query.ActiveSessionID,
		Criteria:        query.Criteria.Normalize(),
		FilteredIDs:     query.FilteredIDs,
		Pinned:          pinned,
		Sessions:        collection,
		Sticky:          sticky,
	}, nil
}

// Resolve returns the sessions a view displays and publishes their order
func (s *SessionListService) Resolve(ctx context.Context, query ListQuery) (*ListResult, error) {
	state, err := s.Snapshot(ctx, query)
	if err != nil {
		return nil, err
	}

	s.orders.SetWorkspaceContext(state.Criteria.Workspace, query.CurrentWorkspace)
	visible := s.filter.ProjectSticky(state, VisibleOptions{
		ManualOrder: s.orders.GetActiveOrder(),
	})

	s.publisher.Publish(domain.SessionIDs(visible))

	logging.Logger.Debug("Session list resolved",
		"total", state.Sessions.Len(),
		"visible", len(visible),
		"workspace", s.orders.ActiveKey().String())
	return &ListResult{State: state, Visible: visible}, nil
}
