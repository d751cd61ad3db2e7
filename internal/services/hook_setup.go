package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/livingtree/prpcheck/internal/logging"
)

// PromptHookEvent is the Claude Code hook event whose payload carries the prompt
const PromptHookEvent = "UserPromptSubmit"

// InstallPromptHook registers command as a UserPromptSubmit hook in the
// Claude settings file at settingsPath. Other settings and hooks are kept.
// Returns false when the command was already registered.
func InstallPromptHook(settingsPath, command string) (bool, error) {
	settings := map[string]any{}

	data, err := os.ReadFile(settingsPath)
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := json.Unmarshal(data, &settings); err != nil {
				return false, fmt.Errorf("failed to parse %s: %w", settingsPath, err)
			}
		}
	case os.IsNotExist(err):
	default:
		return false, fmt.Errorf("failed to read %s: %w", settingsPath, err)
	}

	hooks, ok := settings["hooks"].(map[string]any)
	if !ok {
		if _, present := settings["hooks"]; present {
			return false, fmt.Errorf("%s: \"hooks\" is not an object", settingsPath)
		}
		hooks = map[string]any{}
	}

	var matchers []any
	if existing, present := hooks[PromptHookEvent]; present {
		matchers, ok = existing.([]any)
		if !ok {
			return false, fmt.Errorf("%s: \"hooks.%s\" is not a list", settingsPath, PromptHookEvent)
		}
	}

	if hookRegistered(matchers, command) {
		logging.Logger.Info("Prompt hook already installed", "settings", settingsPath)
		return false, nil
	}

	matchers = append(matchers, map[string]any{
		"hooks": []any{
			map[string]any{
				"type":    "command",
				"command": command,
			},
		},
	})
	hooks[PromptHookEvent] = matchers
	settings["hooks"] = hooks

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(settingsPath, append(out, '\n'), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", settingsPath, err)
	}

	logging.Logger.Info("Installed prompt hook", "settings", settingsPath, "command", command)
	return true, nil
}

func hookRegistered(matchers []any, command string) bool {
	for _, m := range matchers {
		matcher, ok := m.(map[string]any)
		if !ok {
			continue
		}
		hooks, ok := matcher["hooks"].([]any)
		if !ok {
			continue
		}
		for _, h := range hooks {
			hook, ok := h.(map[string]any)
			if ok && hook["command"] == command {
				return true
			}
		}
	}
	return false
}
