package ports

import (
	"context"

	"github.com/renato0307/termdock/internal/domain"
)

// SessionReader reads session data
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter creates and deletes sessions
type SessionWriter interface {
	Add(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}

// SessionStateUpdater updates the mutable parts of a session record
type SessionStateUpdater interface {
	SetActive(ctx context.Context, id string, active bool) error
	UpdateWorkspace(ctx context.Context, id, workspace string) error
}

// SessionMarkReader reads the pinned and sticky sets
type SessionMarkReader interface {
	ListPinned(ctx context.Context) (domain.IDSet, error)
	ListSticky(ctx context.Context) (domain.IDSet, error)
}

// SessionMarkWriter pins or marks sessions as sticky
type SessionMarkWriter interface {
	SetPinned(ctx context.Context, id string, pinned bool) error
	SetSticky(ctx context.Context, id string, sticky bool) error
}

// SessionStateLoader loads the full ordered session collection for list views
type SessionStateLoader interface {
	LoadState(ctx context.Context) (*domain.SessionCollection, error)
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	SessionStateUpdater
	SessionMarkReader
	SessionMarkWriter
	SessionStateLoader
	Close() error
}
