package cmd

import (
	"context"
	"fmt"
)

// SessionsTerminateCmd marks a session as terminated
type SessionsTerminateCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the terminate command
func (s *SessionsTerminateCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.Terminate(context.Background(), s.ID); err != nil {
		return err
	}
	fmt.Printf("Session '%s' terminated\n", s.ID)
	return nil
}

// SessionsResumeCmd marks a session as running
type SessionsResumeCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the resume command
func (s *SessionsResumeCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.Resume(context.Background(), s.ID); err != nil {
		return err
	}
	fmt.Printf("Session '%s' resumed\n", s.ID)
	return nil
}
