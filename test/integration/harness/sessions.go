package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ListedSession mirrors the JSON emitted by "sessions list --format json".
type ListedSession struct {
	ID        string `json:"id"`
	Pinned    bool   `json:"pinned"`
	Status    string `json:"status"`
	Sticky    bool   `json:"sticky"`
	Template  string `json:"template"`
	Title     string `json:"title"`
	Workspace string `json:"workspace"`
}

// ListedOrder mirrors the JSON emitted by "order show --format json".
type ListedOrder struct {
	IDs       []string `json:"ids"`
	Workspace string   `json:"workspace"`
}

// AddSession registers a session and fails the test when the command fails.
func AddSession(tb testing.TB, env *TestEnvironment, id string, extra ...string) {
	tb.Helper()
	args := append([]string{"sessions", "add", "--id", id}, extra...)
	result := RunCommand(tb, env, args...)
	require.Equal(tb, 0, result.ExitCode, "sessions add %s failed.\nStdout: %s\nStderr: %s", id, result.Stdout, result.Stderr)
}

// ListSessions runs "sessions list --format json" with extra flags.
func ListSessions(tb testing.TB, env *TestEnvironment, extra ...string) []ListedSession {
	tb.Helper()
	args := append([]string{"sessions", "list", "--format", "json"}, extra...)
	result := RunCommand(tb, env, args...)
	AssertSuccess(tb, result)

	var sessions []ListedSession
	AssertValidJSON(tb, result, &sessions)
	return sessions
}

// ListedIDs returns the IDs of listed sessions in order.
func ListedIDs(sessions []ListedSession) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}
