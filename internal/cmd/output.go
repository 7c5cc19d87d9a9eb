package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/theme"
)

// Output formats accepted by every listing command
const (
	formatJSON  = "json"
	formatTable = "table"
	formatTOML  = "toml"
)

// sessionView is the serialized form of a listed session
type sessionView struct {
	Command          string    `json:"command,omitempty" toml:"command,omitempty"`
	CreatedAt        time.Time `json:"created_at" toml:"created_at"`
	ID               string    `json:"id" toml:"id"`
	Parent           string    `json:"parent,omitempty" toml:"parent,omitempty"`
	Pinned           bool      `json:"pinned" toml:"pinned"`
	Status           string    `json:"status" toml:"status"`
	Sticky           bool      `json:"sticky" toml:"sticky"`
	Template         string    `json:"template,omitempty" toml:"template,omitempty"`
	Title            string    `json:"title" toml:"title"`
	WorkingDirectory string    `json:"working_directory,omitempty" toml:"working_directory,omitempty"`
	Workspace        string    `json:"workspace" toml:"workspace"`
}

func newSessionView(s domain.Session, pinned, sticky domain.IDSet) sessionView {
	status := "terminated"
	if s.IsRunning() {
		status = "running"
	}
	return sessionView{
		Command:          s.Command,
		CreatedAt:        s.CreatedAt,
		ID:               s.ID,
		Parent:           s.ParentSessionID,
		Pinned:           pinned.Has(s.ID),
		Status:           status,
		Sticky:           sticky.Has(s.ID),
		Template:         domain.EffectiveLabel(s),
		Title:            s.DisplayTitle(),
		WorkingDirectory: s.WorkingDirectory,
		Workspace:        s.EffectiveWorkspace(),
	}
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeTOML writes v as TOML; v must encode to a table
func writeTOML(w io.Writer, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			return theme.CellStyle
		}).
		Headers(headers...)
}

// writeSessions renders sessions in the requested format
func writeSessions(w io.Writer, format string, sessions []domain.Session, pinned, sticky domain.IDSet) error {
	views := make([]sessionView, len(sessions))
	for i, s := range sessions {
		views[i] = newSessionView(s, pinned, sticky)
	}

	switch format {
	case formatJSON:
		return writeJSON(w, views)
	case formatTOML:
		return writeTOML(w, struct {
			Sessions []sessionView `toml:"sessions"`
		}{Sessions: views})
	}

	t := newTable("#", "ID", "TITLE", "STATUS", "WORKSPACE", "TEMPLATE", "MARKS", "CREATED")
	for i, s := range sessions {
		t.Row(
			fmt.Sprintf("%d", i+1),
			s.ID,
			views[i].Title,
			theme.StatusText(s.IsRunning()),
			views[i].Workspace,
			views[i].Template,
			marksText(pinned.Has(s.ID), sticky.Has(s.ID)),
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, theme.MutedStyle.Render(fmt.Sprintf("Total: %d sessions", len(sessions))))
	return nil
}

func marksText(pinned, sticky bool) string {
	var marks []string
	if pinned {
		marks = append(marks, theme.PinnedStyle.Render("pinned"))
	}
	if sticky {
		marks = append(marks, theme.StickyStyle.Render("sticky"))
	}
	return strings.Join(marks, " ")
}

// orderView is the serialized form of one manual order bucket
type orderView struct {
	IDs       []string `json:"ids" toml:"ids"`
	Workspace string   `json:"workspace" toml:"workspace"`
}

// writeOrders renders manual order buckets in the requested format
func writeOrders(w io.Writer, format string, orders []orderView) error {
	switch format {
	case formatJSON:
		return writeJSON(w, orders)
	case formatTOML:
		return writeTOML(w, struct {
			Orders []orderView `toml:"orders"`
		}{Orders: orders})
	}

	t := newTable("WORKSPACE", "POSITION", "ID")
	rows := 0
	for _, o := range orders {
		for i, id := range o.IDs {
			t.Row(o.Workspace, fmt.Sprintf("%d", i), id)
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render("No manual order set"))
		return nil
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

// workspaceLabel names a bucket for display
func workspaceLabel(key domain.WorkspaceKey) string {
	if key.IsGlobal() {
		return domain.AllWorkspacesLabel
	}
	return key.Name()
}
