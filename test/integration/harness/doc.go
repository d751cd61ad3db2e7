// Package harness provides utilities for integration testing the prpcheck CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PRPCHECK_HOME: Isolated per test (temp directory)
//   - PRPCHECK_DEBUG: Disabled to reduce noise
//   - CLAUDE_CONFIG_DIR: Isolated so setup --global never touches the real one
package harness
