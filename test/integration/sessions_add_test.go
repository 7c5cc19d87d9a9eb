package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/test/integration/harness"
)

func TestSessionsAdd(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "add with generated id",
			args:         []string{"sessions", "add", "build"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "added")
				sessions := harness.ListSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "build", sessions[0].Title)
				assert.NotEmpty(t, sessions[0].ID)
			},
		},
		{
			name: "add with all options",
			args: []string{
				"sessions", "add", "Full Session",
				"--id", "full",
				"--command", "npm run dev",
				"--dir", "/tmp/project",
				"--template", "node",
				"--badge", "Node",
				"--workspace", "Work",
			},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Session 'full' added")
				sessions := harness.ListSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "Node", sessions[0].Template)
				assert.Equal(t, "Work", sessions[0].Workspace)
				assert.Equal(t, "running", sessions[0].Status)
			},
		},
		{
			name:         "local session is labelled Local",
			args:         []string{"sessions", "add", "--id", "loc", "--local", "--template", "node"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				sessions := harness.ListSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "Local", sessions[0].Template)
			},
		},
		{
			name:         "inactive session is terminated",
			args:         []string{"sessions", "add", "--id", "old", "--inactive"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				sessions := harness.ListSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "terminated", sessions[0].Status)
			},
		},
		{
			name: "add duplicate session fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AddSession(t, env, "dup")
			},
			args:         []string{"sessions", "add", "--id", "dup"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "already exists")
			},
		},
		{
			name:         "session cannot be its own parent",
			args:         []string{"sessions", "add", "--id", "loop", "--parent", "loop"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
