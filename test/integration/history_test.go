package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingtree/prpcheck/test/integration/harness"
)

type runJSON struct {
	ID        string `json:"id"`
	Outcome   string `json:"outcome"`
	PRPPath   string `json:"prp_path"`
	SessionID string `json:"session_id"`
	Source    string `json:"source"`
	Valid     bool   `json:"valid"`
}

func listRuns(t *testing.T, env *harness.TestEnvironment, args ...string) []runJSON {
	t.Helper()
	result := harness.RunCommand(t, env, append([]string{"history", "list", "--format", "json"}, args...)...)
	harness.AssertSuccess(t, result)
	var runs []runJSON
	harness.AssertValidJSON(t, result, &runs)
	return runs
}

func TestHistory_RecordsHookAndCheckRuns(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WritePRP("PRPs/good.md", "pnpm", "Docker")

	harness.AssertSuccess(t, harness.RunHook(t, env, harness.HookPayload(t, "Execute PRPs/good.md"), "validate"))
	harness.AssertSuccess(t, harness.RunHook(t, env, harness.HookPayload(t, "Execute PRPs/missing.md"), "validate"))
	harness.AssertSuccess(t, harness.RunHook(t, env, harness.HookPayload(t, "no reference"), "validate"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "check", "PRPs/good.md"))

	runs := listRuns(t, env)
	require.Len(t, runs, 3, "prompts without a PRP reference are not recorded")
	assert.Equal(t, "check", runs[0].Source)

	hookRuns := listRuns(t, env, "--source", "hook")
	require.Len(t, hookRuns, 2)
	for _, r := range hookRuns {
		assert.Equal(t, "integration-session", r.SessionID)
	}

	invalid := listRuns(t, env, "--invalid")
	require.Len(t, invalid, 1)
	assert.Equal(t, "not_found", invalid[0].Outcome)
	assert.Equal(t, "PRPs/missing.md", invalid[0].PRPPath)

	byPath := listRuns(t, env, "--path", "PRPs/good.md", "--limit", "1")
	require.Len(t, byPath, 1)
	assert.True(t, byPath[0].Valid)

	t.Run("show", func(t *testing.T) {
		result := harness.RunCommand(t, env, "history", "show", invalid[0].ID)
		harness.AssertSuccess(t, result)
		harness.AssertJSONContains(t, result, "outcome", "not_found")
	})

	t.Run("show unknown", func(t *testing.T) {
		result := harness.RunCommand(t, env, "history", "show", "does-not-exist")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "validation run not found")
	})

	t.Run("table", func(t *testing.T) {
		result := harness.RunCommand(t, env, "history")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Total: 3 runs")
	})

	t.Run("future window is empty", func(t *testing.T) {
		assert.Empty(t, listRuns(t, env, "--from", "2999-01-01"))
	})

	t.Run("bad time", func(t *testing.T) {
		result := harness.RunCommand(t, env, "history", "list", "--from", "someday")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "invalid --from")
	})
}

func TestHistory_RecordingDisabled(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{"record_history": false})

	harness.AssertSuccess(t, harness.RunHook(t, env, harness.HookPayload(t, "Execute PRPs/missing.md"), "validate"))

	assert.Empty(t, listRuns(t, env))
}

func TestHistory_Prune(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunHook(t, env, harness.HookPayload(t, "Execute PRPs/missing.md"), "validate"))

	result := harness.RunCommand(t, env, "history", "prune", "--older-than", "1h")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Deleted 0 validation runs")
	require.Len(t, listRuns(t, env), 1)

	result = harness.RunCommand(t, env, "history", "prune", "--older-than", "1ns")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Deleted 1 validation runs")
	assert.Empty(t, listRuns(t, env))

	result = harness.RunCommand(t, env, "history", "prune", "--older-than", "soon")
	harness.AssertFailure(t, result)
}
