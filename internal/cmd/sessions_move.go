package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/termdock/internal/logging"
)

// SessionsMoveCmd moves a session to another workspace
type SessionsMoveCmd struct {
	ID        string `arg:"" help:"Session ID"`
	Workspace string `arg:"" help:"Target workspace"`
}

// Run executes the move command
func (s *SessionsMoveCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions move command", "session", s.ID, "workspace", s.Workspace)

	if err := cli.Container.SessionService.MoveToWorkspace(context.Background(), s.ID, s.Workspace); err != nil {
		return err
	}
	fmt.Printf("Session '%s' moved to workspace '%s'\n", s.ID, s.Workspace)
	return nil
}
