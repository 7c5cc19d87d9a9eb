package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/termdock/internal/logging"
)

// SessionsListCmd lists sessions with the same filters, order and sticky
// rules a list view applies
type SessionsListCmd struct {
	ListFlags `embed:""`

	Format string `help:"Output format: table, json or toml" enum:"table,json,toml" default:"table"`
	IDs    bool   `help:"Only print the published visible order, one ID per line" name:"ids"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	query := s.query(cli.loadedSettings())
	logging.Logger.Debug("Executing sessions list command",
		"status", query.Criteria.Status,
		"workspace", query.Criteria.Workspace,
		"sortBy", query.Criteria.SortBy,
		"sortOrder", query.Criteria.SortOrder)

	result, err := cli.Container.ListService.Resolve(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	published, version := cli.Container.VisibleOrder.Latest()
	logging.Logger.Debug("Visible order published", "count", len(published), "version", version)
	if s.IDs {
		for _, id := range published {
			fmt.Println(id)
		}
		return nil
	}

	return writeSessions(os.Stdout, s.Format, result.Visible, result.State.Pinned, result.State.Sticky)
}
