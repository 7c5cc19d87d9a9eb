package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/test/integration/harness"
)

func TestSessionsTerminateResume(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AddSession(t, env, "a")

	result := harness.RunCommand(t, env, "sessions", "terminate", "a")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'a' terminated")

	sessions := harness.ListSessions(t, env)
	require.Len(t, sessions, 1)
	assert.Equal(t, "terminated", sessions[0].Status)
	assert.Empty(t, harness.ListSessions(t, env, "--status", "active"))

	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "resume", "a"))
	sessions = harness.ListSessions(t, env, "--status", "active")
	require.Len(t, sessions, 1)
	assert.Equal(t, "running", sessions[0].Status)
}

func TestSessionsTerminate_UnknownSessionFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "terminate", "ghost")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "session not found")
}

func TestSessionsPinAndSticky(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AddSession(t, env, "a")
	harness.AddSession(t, env, "b")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "pin", "a"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "sticky", "b"))

	sessions := harness.ListSessions(t, env)
	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].ID)
	assert.True(t, sessions[0].Pinned)
	assert.True(t, sessions[1].Sticky)

	// Marking twice is harmless
	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "pin", "a"))

	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "unpin", "a"))
	result := harness.RunCommand(t, env, "sessions", "sticky", "b", "--off")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "no longer sticky")

	sessions = harness.ListSessions(t, env)
	assert.Equal(t, []string{"b", "a"}, harness.ListedIDs(sessions))
	for _, s := range sessions {
		assert.False(t, s.Pinned)
		assert.False(t, s.Sticky)
	}
}
