package cmd

import (
	"context"
	"fmt"
)

// SessionsPinCmd pins a session
type SessionsPinCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the pin command
func (s *SessionsPinCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.SetPinned(context.Background(), s.ID, true); err != nil {
		return err
	}
	fmt.Printf("Session '%s' pinned\n", s.ID)
	return nil
}

// SessionsUnpinCmd unpins a session
type SessionsUnpinCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the unpin command
func (s *SessionsUnpinCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.SetPinned(context.Background(), s.ID, false); err != nil {
		return err
	}
	fmt.Printf("Session '%s' unpinned\n", s.ID)
	return nil
}

// SessionsStickyCmd marks or unmarks a session as sticky
type SessionsStickyCmd struct {
	ID  string `arg:"" help:"Session ID"`
	Off bool   `help:"Remove the sticky mark"`
}

// Run executes the sticky command
func (s *SessionsStickyCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.SetSticky(context.Background(), s.ID, !s.Off); err != nil {
		return err
	}
	if s.Off {
		fmt.Printf("Session '%s' is no longer sticky\n", s.ID)
	} else {
		fmt.Printf("Session '%s' is sticky\n", s.ID)
	}
	return nil
}
