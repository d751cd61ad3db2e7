package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/livingtree/prpcheck/internal/filelock"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/paths"
	"github.com/livingtree/prpcheck/internal/services"
)

// ErrSetupCancelled is returned when the user declines the confirmation
var ErrSetupCancelled = errors.New("setup cancelled")

// SetupCmd installs prpcheck as a Claude Code UserPromptSubmit hook
type SetupCmd struct {
	Command    string `help:"Hook command to register (default: this binary followed by 'validate')"`
	Global     bool   `help:"Install into the user-level Claude settings instead of the project"`
	ProjectDir string `help:"Project whose .claude/settings.json receives the hook" type:"path" default:"."`
	Yes        bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	command := s.Command
	if command == "" {
		binary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to get prpcheck binary path: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(binary); err == nil {
			binary = resolved
		}
		command = fmt.Sprintf("%q validate", binary)
	}

	settingsPath := paths.GetClaudeSettingsPath(s.ProjectDir, s.Global)
	logging.Logger.Info("Setting up prompt hook", "settings", settingsPath, "command", command)

	if !s.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Install PRP validation hook?").
			Description(fmt.Sprintf("Adds %s to %s hooks in %s", command, services.PromptHookEvent, settingsPath)).
			Affirmative("Install").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed (use --yes when not running in a terminal): %w", err)
		}
		if !confirmed {
			return ErrSetupCancelled
		}
	}

	lock, err := filelock.Acquire(settingsPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	changed, err := services.InstallPromptHook(settingsPath, command)
	if err != nil {
		return err
	}

	if !changed {
		fmt.Printf("✓ Hook already installed in %s\n", settingsPath)
		return nil
	}

	fmt.Printf("✓ Installed PRP validation hook in %s\n", settingsPath)
	fmt.Println("Prompts that mention PRPs/<name>.md are now validated before Claude runs them.")
	return nil
}
