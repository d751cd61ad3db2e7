package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/livingtree/prpcheck/internal/config"
	"github.com/livingtree/prpcheck/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Validate ValidateCmd `cmd:"validate" help:"Validate the PRP referenced by a hook payload on stdin (default)" default:"1"`
	Check    CheckCmd    `cmd:"check" help:"Validate PRP files directly"`
	History  HistoryCmd  `cmd:"history" help:"Browse and prune recorded validation runs"`
	Schema   SchemaCmd   `cmd:"schema" help:"Print the JSON Schema of the verdict"`
	Setup    SetupCmd    `cmd:"setup" help:"Install the validation hook into Claude Code settings"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Nothing here may fail the hook: logging problems only produce a warning.
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PRPCHECK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PRPCHECK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logging.Discard()
	}

	// Children of this process share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PRPCHECK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PRPCHECK_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("PRPCHECK_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container is created after logging so GORM logs land in the right place
	c.Container = NewContainer(c.settings)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
