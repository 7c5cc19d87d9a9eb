package ports

import (
	"context"

	"github.com/renato0307/termdock/internal/domain"
)

// ManualOrderStore persists the user-imposed session order of every workspace bucket
type ManualOrderStore interface {
	Load(ctx context.Context) (map[domain.WorkspaceKey][]string, error)
	Save(ctx context.Context, orders map[domain.WorkspaceKey][]string) error
}

// VisibleOrderPublisher shares the last resolved visible order with other views.
// The latest publication replaces any earlier one.
type VisibleOrderPublisher interface {
	Publish(ids []string)
}
