package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/test/integration/harness"
)

func TestSessionsMove(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AddSession(t, env, "a", "--workspace", "W")
	harness.AddSession(t, env, "b", "--workspace", "W")
	harness.AddSession(t, env, "x", "--workspace", "X")
	harness.AssertSuccess(t, harness.RunCommand(t, env, "order", "set", "b", "a", "--workspace", "W"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "order", "set", "x", "--workspace", "X"))

	result := harness.RunCommand(t, env, "sessions", "move", "a", "X")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'a' moved to workspace 'X'")

	sessions := harness.ListSessions(t, env, "--workspace", "X")
	assert.Equal(t, []string{"x", "a"}, harness.ListedIDs(sessions))
	require.Len(t, sessions, 2)
	assert.Equal(t, "X", sessions[1].Workspace)

	orders := showOrders(t, env, "--all")
	byWorkspace := make(map[string][]string)
	for _, o := range orders {
		byWorkspace[o.Workspace] = o.IDs
	}
	assert.Equal(t, []string{"b"}, byWorkspace["W"])
	assert.Equal(t, []string{"x", "a"}, byWorkspace["X"])
}

func TestSessionsMove_Failures(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AddSession(t, env, "a")

	harness.AssertFailure(t, harness.RunCommand(t, env, "sessions", "move", "ghost", "W"))
	harness.AssertFailure(t, harness.RunCommand(t, env, "sessions", "move", "a", "all"))
	harness.AssertFailure(t, harness.RunCommand(t, env, "sessions", "move", "a", "__global__"))
	harness.AssertFailure(t, harness.RunCommand(t, env, "sessions", "add", "--id", "g", "--workspace", "__global__"))
}
