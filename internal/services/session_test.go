package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/internal/domain"
	portsmocks "github.com/renato0307/termdock/internal/ports/mocks"
)

type sessionFixture struct {
	marks   *portsmocks.MockSessionMarkWriter
	orders  *ManualOrderService
	reader  *portsmocks.MockSessionReader
	saved   *savedOrders
	service *SessionService
	updater *portsmocks.MockSessionStateUpdater
	writer  *portsmocks.MockSessionWriter
}

func newSessionFixture(t *testing.T, orders map[domain.WorkspaceKey][]string) *sessionFixture {
	t.Helper()

	orderService, saved := newOrderService(t, orders)
	f := &sessionFixture{
		marks:   portsmocks.NewMockSessionMarkWriter(t),
		orders:  orderService,
		reader:  portsmocks.NewMockSessionReader(t),
		saved:   saved,
		updater: portsmocks.NewMockSessionStateUpdater(t),
		writer:  portsmocks.NewMockSessionWriter(t),
	}
	f.service = NewSessionService(f.reader, f.writer, f.updater, f.marks, f.orders)
	return f
}

func TestAdd_GeneratesIDWhenMissing(t *testing.T) {
	f := newSessionFixture(t, nil)

	var stored domain.Session
	f.writer.EXPECT().Add(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s domain.Session) { stored = s }).
		Return(nil)

	session, err := f.service.Add(context.Background(), AddSessionParams{
		Command:   "htop",
		Workspace: "  W ",
	})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(session.ID)
	assert.NoError(t, parseErr, "generated id should be a uuid")
	assert.Equal(t, session.ID, stored.ID)
	assert.True(t, stored.IsActive)
	assert.Equal(t, "W", stored.Workspace)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestAdd_KeepsGivenIDAndInactiveFlag(t *testing.T) {
	f := newSessionFixture(t, nil)

	f.writer.EXPECT().Add(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.ID == "build" && !s.IsActive && s.TemplateName == "go"
	})).Return(nil)

	session, err := f.service.Add(context.Background(), AddSessionParams{
		ID:           "build",
		Inactive:     true,
		TemplateName: "go",
	})

	require.NoError(t, err)
	assert.Equal(t, "build", session.ID)
}

func TestAdd_RejectsSelfParent(t *testing.T) {
	f := newSessionFixture(t, nil)

	_, err := f.service.Add(context.Background(), AddSessionParams{ID: "a", ParentSessionID: "a"})

	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestAdd_RejectsReservedWorkspace(t *testing.T) {
	f := newSessionFixture(t, nil)

	for _, workspace := range []string{"all", "All Workspaces", "__global__", " __global__ "} {
		_, err := f.service.Add(context.Background(), AddSessionParams{ID: "a", Workspace: workspace})
		assert.ErrorIs(t, err, domain.ErrInvalidSession, "workspace %q", workspace)
	}
}

func TestAdd_WrapsRepositoryError(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.writer.EXPECT().Add(mock.Anything, mock.Anything).Return(domain.ErrSessionExists)

	_, err := f.service.Add(context.Background(), AddSessionParams{ID: "a"})

	assert.ErrorIs(t, err, domain.ErrSessionExists)
	assert.Contains(t, err.Error(), "failed to add session")
}

func TestDelete_DropsManualOrderEntries(t *testing.T) {
	f := newSessionFixture(t, map[domain.WorkspaceKey][]string{
		domain.NamedWorkspace("Default"): {"a", "b"},
		domain.GlobalWorkspace():         {"b", "a"},
	})
	f.writer.EXPECT().Delete(mock.Anything, "a").Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), "a"))

	assert.Equal(t, []string{"b"}, f.saved.last[domain.NamedWorkspace("Default")])
	assert.Equal(t, []string{"b"}, f.saved.last[domain.GlobalWorkspace()])
}

func TestDelete_KeepsOrderWhenRepositoryFails(t *testing.T) {
	f := newSessionFixture(t, map[domain.WorkspaceKey][]string{
		domain.NamedWorkspace("Default"): {"a"},
	})
	f.writer.EXPECT().Delete(mock.Anything, "a").Return(domain.ErrSessionNotFound)

	err := f.service.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, []string{"a"}, f.orders.GetActiveOrder())
}

func TestTerminateAndResume(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.updater.EXPECT().SetActive(mock.Anything, "a", false).Return(nil)
	f.updater.EXPECT().SetActive(mock.Anything, "b", true).Return(errors.New("boom"))

	require.NoError(t, f.service.Terminate(context.Background(), "a"))

	err := f.service.Resume(context.Background(), "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set active flag")
}

func TestSetPinnedAndSticky(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.marks.EXPECT().SetPinned(mock.Anything, "a", true).Return(nil)
	f.marks.EXPECT().SetSticky(mock.Anything, "a", false).Return(domain.ErrSessionNotFound)

	require.NoError(t, f.service.SetPinned(context.Background(), "a", true))
	assert.ErrorIs(t, f.service.SetSticky(context.Background(), "a", false), domain.ErrSessionNotFound)
}

func TestMoveToWorkspace_MovesBetweenBuckets(t *testing.T) {
	f := newSessionFixture(t, map[domain.WorkspaceKey][]string{
		domain.NamedWorkspace("Default"): {"a", "b"},
		domain.NamedWorkspace("W"):       {"c"},
	})
	f.reader.EXPECT().Get(mock.Anything, "a").Return(&domain.Session{ID: "a"}, nil)
	f.updater.EXPECT().UpdateWorkspace(mock.Anything, "a", "W").Return(nil)

	require.NoError(t, f.service.MoveToWorkspace(context.Background(), "a", " W "))

	assert.Equal(t, []string{"b"}, f.orders.OrderFor(domain.NamedWorkspace("Default")))
	assert.Equal(t, []string{"c", "a"}, f.orders.OrderFor(domain.NamedWorkspace("W")))
}

func TestMoveToWorkspace_RejectsAllWorkspaces(t *testing.T) {
	f := newSessionFixture(t, nil)

	for _, target := range []string{"", "all", "All Workspaces", "__global__"} {
		err := f.service.MoveToWorkspace(context.Background(), "a", target)
		assert.ErrorIs(t, err, domain.ErrInvalidSession, "target %q", target)
	}
}

func TestMoveToWorkspace_SessionNotFound(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.reader.EXPECT().Get(mock.Anything, "ghost").Return(nil, domain.ErrSessionNotFound)

	err := f.service.MoveToWorkspace(context.Background(), "ghost", "W")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestGet_PassesThroughRepository(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.reader.EXPECT().Get(mock.Anything, "a").Return(&domain.Session{ID: "a", Title: "build"}, nil)

	session, err := f.service.Get(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, "build", session.Title)
}
