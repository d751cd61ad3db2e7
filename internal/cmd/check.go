package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/theme"
)

// ErrInvalidPRPs is returned by check when at least one file fails validation
var ErrInvalidPRPs = errors.New("one or more PRPs are invalid")

// CheckCmd validates PRP files given on the command line
type CheckCmd struct {
	Paths       []string `arg:"" help:"PRP files to validate"`
	Concurrency int      `help:"Files validated at once (default from settings, else 4)" default:"0"`
	Format      string   `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	NoFail      bool     `help:"Exit 0 even when a PRP is invalid"`
}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = cli.Container.Settings.Concurrency()
	}

	logging.Logger.Info("Checking PRP files", "count", len(c.Paths), "concurrency", concurrency)

	results, err := cli.Container.ValidationService.Check(context.Background(), c.Paths, concurrency)
	if err != nil {
		return fmt.Errorf("failed to check PRP files: %w", err)
	}

	if err := c.render(os.Stdout, results); err != nil {
		return err
	}

	if !c.NoFail && anyInvalid(results) {
		return ErrInvalidPRPs
	}
	return nil
}

func (c *CheckCmd) render(out io.Writer, results []domain.FileVerdict) error {
	switch c.Format {
	case "json":
		return writeJSON(out, results)
	case "yaml":
		return writeYAML(out, results)
	default:
		renderCheckTable(out, results)
		return nil
	}
}

func anyInvalid(results []domain.FileVerdict) bool {
	for _, r := range results {
		if !r.Verdict.Valid {
			return true
		}
	}
	return false
}

// renderCheckTable prints one line per file followed by a summary
func renderCheckTable(out io.Writer, results []domain.FileVerdict) {
	fmt.Fprintf(out, "%s %s %s %s\n",
		theme.HeaderStyle.Render(fmt.Sprintf("%-40s", "PRP")),
		theme.HeaderStyle.Render(fmt.Sprintf("%-10s", "RESULT")),
		theme.HeaderStyle.Render(fmt.Sprintf("%-6s", "SCORE")),
		theme.HeaderStyle.Render("DETAILS"))
	fmt.Fprintln(out, strings.Repeat("─", 90))

	valid := 0
	for _, r := range results {
		if r.Verdict.Valid {
			valid++
		}

		result := theme.InvalidStyle.Render(fmt.Sprintf("%-10s", "invalid"))
		if r.Verdict.Valid {
			result = theme.ValidStyle.Render(fmt.Sprintf("%-10s", "valid"))
		}

		score := "-"
		if r.Verdict.Score != nil {
			score = fmt.Sprintf("%d/10", *r.Verdict.Score)
		}

		fmt.Fprintf(out, "%s %s %-6s %s\n",
			theme.PathStyle.Render(fmt.Sprintf("%-40s", truncate(r.Path, 40))),
			result,
			score,
			verdictDetails(r.Verdict))
	}

	fmt.Fprintf(out, "\n%d of %d PRPs valid\n", valid, len(results))
}

// verdictDetails summarises why a verdict came out the way it did
func verdictDetails(v domain.Verdict) string {
	switch v.Outcome {
	case domain.OutcomeMissingSections:
		return theme.InvalidStyle.Render("missing: " + strings.Join(v.MissingSections, ", "))
	case domain.OutcomeScored:
		h := v.Heuristics()
		var found []string
		if h.HasPnpm {
			found = append(found, "pnpm")
		}
		if h.HasDocker {
			found = append(found, "docker")
		}
		if h.HasValidation {
			found = append(found, "validation")
		}
		if len(found) == 0 {
			return theme.MutedStyle.Render("no tooling keywords")
		}
		return strings.Join(found, ", ")
	case domain.OutcomeNoPath:
		return theme.NoteStyle.Render(v.Note)
	default:
		return theme.ErrorStyle.Render(v.Error)
	}
}
