package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
)

// ValidateCmd is the hook entry point: one JSON payload in, one verdict out.
// It never fails, so Claude Code always receives exit status 0.
type ValidateCmd struct{}

// Run executes the validate command
func (v *ValidateCmd) Run(cli *CLI) error {
	return runHook(context.Background(), cli.Container, os.Stdin, os.Stdout)
}

func runHook(ctx context.Context, container *Container, in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		logging.Logger.Error("Failed to read hook payload", "error", err)
		return writeVerdict(out, domain.InputErrorVerdict())
	}

	logging.Logger.Info("=== PRP VALIDATION HOOK TRIGGERED ===", "bytes", len(raw), "pid", os.Getpid())

	verdict := container.ValidationService.HandleHookPayload(ctx, raw)
	return writeVerdict(out, verdict)
}

// writeVerdict prints the verdict as a single JSON line
func writeVerdict(out io.Writer, verdict domain.Verdict) error {
	line, err := verdict.HookLine()
	if err == nil {
		_, err = fmt.Fprintf(out, "%s\n", line)
	}
	if err != nil {
		logging.Logger.Error("Failed to write verdict", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: failed to write verdict: %v\n", err)
	}
	return nil
}
