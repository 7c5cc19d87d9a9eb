package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
)

// SessionsDelCmd deletes a session
type SessionsDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"ID of the session to delete"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions del command", "session", s.ID, "force", s.Force)

	ctx := context.Background()
	session, err := cli.Container.SessionService.Get(ctx, s.ID)
	if err != nil {
		logging.Logger.Error("Session not found", "session", s.ID, "error", err)
		return fmt.Errorf("session not found: %w", err)
	}

	if !s.Force && !s.confirmDeletion(session) {
		return nil
	}

	if err := cli.Container.SessionService.Delete(ctx, s.ID); err != nil {
		return err
	}

	logging.Logger.Info("Session deleted successfully via CLI", "session", s.ID)
	fmt.Printf("Session '%s' deleted successfully\n", s.ID)
	return nil
}

func (s *SessionsDelCmd) confirmDeletion(session *domain.Session) bool {
	fmt.Printf("WARNING: This will delete session '%s' (%s)\n", session.ID, session.DisplayTitle())
	fmt.Println("  - Remove it from every manual order")
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled session deletion", "session", s.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}
