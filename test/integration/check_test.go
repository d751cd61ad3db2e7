package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingtree/prpcheck/test/integration/harness"
)

func TestCheck(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WritePRP("PRPs/good.md", "pnpm install", "Docker")
	env.WriteFile("PRPs/thin.md", "## Goal\n")

	t.Run("table fails on invalid files", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check", "PRPs/good.md", "PRPs/thin.md", "PRPs/absent.md")

		harness.AssertExitCode(t, result, 1)
		harness.AssertStdoutContains(t, result, "PRPs/good.md")
		harness.AssertStdoutContains(t, result, "9/10")
		harness.AssertStdoutContains(t, result, "PRP file not found")
		harness.AssertStdoutContains(t, result, "1 of 3 PRPs valid")
		harness.AssertStderrContains(t, result, "one or more PRPs are invalid")
	})

	t.Run("no-fail", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check", "--no-fail", "PRPs/thin.md")

		harness.AssertSuccess(t, result)
	})

	t.Run("all valid", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check", "PRPs/good.md")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "1 of 1 PRPs valid")
	})

	t.Run("json keeps argument order", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check", "--format", "json", "--no-fail", "--concurrency", "2",
			"PRPs/thin.md", "PRPs/good.md")

		harness.AssertSuccess(t, result)
		var out []struct {
			Path    string         `json:"path"`
			Verdict map[string]any `json:"verdict"`
		}
		harness.AssertValidJSON(t, result, &out)
		require.Len(t, out, 2)
		assert.Equal(t, "PRPs/thin.md", out[0].Path)
		assert.Equal(t, false, out[0].Verdict["valid"])
		assert.Len(t, out[0].Verdict["missing_sections"], 5)
		assert.Equal(t, "PRPs/good.md", out[1].Path)
		assert.Equal(t, float64(9), out[1].Verdict["score"])
	})

	t.Run("yaml", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check", "--format", "yaml", "PRPs/good.md")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "path: PRPs/good.md")
		harness.AssertStdoutContains(t, result, "score: 9")
	})

	t.Run("requires a path", func(t *testing.T) {
		result := harness.RunCommand(t, env, "check")

		harness.AssertFailure(t, result)
	})
}
