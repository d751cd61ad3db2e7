package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RequiredSections is a PRP body holding every required section marker
const RequiredSections = `# Feature

## Goal
Describe the goal.

## Why
Explain the motivation.

## What
List the behaviour.

## All Needed Context
Link the docs.

## Implementation Blueprint
Outline the tasks.

## Validation Loop
Run the checks.
`

// TestEnvironment provides an isolated PRPCHECK_HOME and a project directory
// in which commands run.
type TestEnvironment struct {
	ClaudeConfigDir string
	Home            string
	ProjectDir      string
	extraEnv        map[string]string
	tb              testing.TB
}

// NewTestEnvironment creates an isolated test environment.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		ClaudeConfigDir: filepath.Join(root, "claude-config"),
		Home:            filepath.Join(root, "prpcheck-home"),
		ProjectDir:      filepath.Join(root, "project"),
		extraEnv:        make(map[string]string),
		tb:              tb,
	}

	for _, dir := range []string{env.Home, filepath.Join(env.ProjectDir, "PRPs")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out PRPCHECK_* variables and sets:
//   - PRPCHECK_HOME to the temp directory
//   - PRPCHECK_DEBUG to empty string (disables debug logging)
//   - CLAUDE_CONFIG_DIR to a temp directory
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"CLAUDE_CONFIG_DIR": true,
		"PRPCHECK_DEBUG":    true,
		"PRPCHECK_HOME":     true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "PRPCHECK_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"PRPCHECK_HOME="+e.Home,
		"PRPCHECK_DEBUG=",
		"CLAUDE_CONFIG_DIR="+e.ClaudeConfigDir,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "history.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes content to a path relative to the project directory.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.ProjectDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// WritePRP writes a PRP with every required section plus extra lines.
func (e *TestEnvironment) WritePRP(rel string, extra ...string) string {
	e.tb.Helper()
	return e.WriteFile(rel, RequiredSections+strings.Join(extra, "\n")+"\n")
}

// WriteSettings writes settings.json into PRPCHECK_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()
	data, err := json.Marshal(settings)
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// HookPayload builds a UserPromptSubmit payload for prompt.
func HookPayload(tb testing.TB, prompt string) string {
	tb.Helper()
	data, err := json.Marshal(map[string]string{
		"cwd":             "/tmp/project",
		"hook_event_name": "UserPromptSubmit",
		"prompt":          prompt,
		"session_id":      "integration-session",
		"transcript_path": "/tmp/transcript.jsonl",
	})
	if err != nil {
		tb.Fatalf("Failed to marshal payload: %v", err)
	}
	return string(data)
}
