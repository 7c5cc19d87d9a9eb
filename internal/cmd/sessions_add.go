package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/services"
)

// SessionsAddCmd registers a new session
type SessionsAddCmd struct {
	Badge          string `help:"Badge label shown instead of the template name"`
	Command        string `help:"Command running in the session" short:"c"`
	Dir            string `help:"Working directory of the session"`
	ID             string `help:"Session ID (generated when omitted)"`
	Inactive       bool   `help:"Register the session as already terminated"`
	Local          bool   `help:"Session only exists on this machine (labelled Local)"`
	Parent         string `help:"Parent session ID; child sessions never appear in lists"`
	Template       string `help:"Template the session was created from" short:"t"`
	Title          string `arg:"" optional:"" help:"Session title"`
	Workspace      string `help:"Workspace of the session (default: Default)" short:"w"`
	WorkspaceOrder *int   `help:"Position of the session inside its workspace"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions add command", "id", s.ID, "title", s.Title, "workspace", s.Workspace)

	session, err := cli.Container.SessionService.Add(context.Background(), services.AddSessionParams{
		Command:            s.Command,
		ID:                 s.ID,
		Inactive:           s.Inactive,
		LocalOnly:          s.Local,
		ParentSessionID:    s.Parent,
		TemplateBadgeLabel: s.Badge,
		TemplateName:       s.Template,
		Title:              s.Title,
		WorkingDirectory:   s.Dir,
		Workspace:          s.Workspace,
		WorkspaceOrder:     s.WorkspaceOrder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Session '%s' added\n", session.ID)
	return nil
}
