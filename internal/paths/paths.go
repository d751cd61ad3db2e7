package paths

import (
	"os"
	"path/filepath"
)

// GetHome returns PRPCHECK_HOME or the ~/.prpcheck default
func GetHome() string {
	home := os.Getenv("PRPCHECK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".prpcheck"
		}
		return filepath.Join(homeDir, ".prpcheck")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PRPCHECK_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetSettingsPath returns $PRPCHECK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetClaudeSettingsPath returns the Claude Code settings file for a project
// directory, or the user-level one when global is set
func GetClaudeSettingsPath(projectDir string, global bool) string {
	if global {
		if envDir := os.Getenv("CLAUDE_CONFIG_DIR"); envDir != "" {
			return filepath.Join(ExpandPath(envDir), "settings.json")
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("~", ".claude", "settings.json")
		}
		return filepath.Join(homeDir, ".claude", "settings.json")
	}
	return filepath.Join(projectDir, ".claude", "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
