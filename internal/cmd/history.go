package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/ports"
	"github.com/livingtree/prpcheck/internal/services"
	"github.com/livingtree/prpcheck/internal/theme"
	"github.com/livingtree/prpcheck/internal/ui"
)

// HistoryCmd manages recorded validation runs
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"list" help:"List recorded validation runs" default:"1"`
	Prune HistoryPruneCmd `cmd:"prune" help:"Delete old validation runs"`
	Show  HistoryShowCmd  `cmd:"show" help:"Show a single validation run"`
}

// HistoryListCmd lists recorded runs
type HistoryListCmd struct {
	Format      string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	From        string `help:"Only runs at or after this time (RFC3339, YYYY-MM-DD, or ago like 2h, 7d)"`
	Interactive bool   `help:"Browse runs in an interactive table" short:"i"`
	Invalid     bool   `help:"Only invalid runs"`
	Limit       int    `help:"Maximum number of runs (0 = unlimited)" default:"50"`
	Path        string `help:"Only runs for this PRP path (e.g. PRPs/feature.md)"`
	Source      string `help:"Only runs from this source: hook or check"`
	To          string `help:"Only runs at or before this time (same forms as --from)"`
}

// Run executes the history list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	history, err := cli.Container.History()
	if err != nil {
		return err
	}

	source := domain.RunSource(h.Source)
	if source != "" && source != domain.SourceHook && source != domain.SourceCheck {
		return fmt.Errorf("invalid --source %q: expected hook or check", h.Source)
	}

	now := time.Now()
	from, err := services.ParseTimeBound(h.From, now)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := services.ParseTimeBound(h.To, now)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	filter := ports.RunFilter{
		From:        from,
		InvalidOnly: h.Invalid,
		Limit:       h.Limit,
		PRPPath:     h.Path,
		Source:      source,
		To:          to,
	}

	runs, err := history.List(context.Background(), filter)
	if err != nil {
		return err
	}

	if h.Interactive {
		logging.Logger.Info("Starting history browser", "runs", len(runs))
		p := tea.NewProgram(ui.NewHistoryBrowser(runs), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running history browser: %w", err)
		}
		return nil
	}

	switch h.Format {
	case "json":
		return writeJSON(os.Stdout, runs)
	case "yaml":
		return writeYAML(os.Stdout, runs)
	default:
		renderHistoryTable(os.Stdout, runs)
		return nil
	}
}

func renderHistoryTable(out io.Writer, runs []domain.ValidationRun) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No validation runs found.")
		return
	}

	fmt.Fprintf(out, "%-36s  %-19s  %-6s  %-30s  %-16s  %-5s  %s\n",
		"ID", "TIME", "SOURCE", "PRP", "OUTCOME", "SCORE", "VALID")
	fmt.Fprintln(out, strings.Repeat("─", 130))

	for _, run := range runs {
		score := "-"
		if run.Score != nil {
			score = fmt.Sprintf("%d", *run.Score)
		}
		fmt.Fprintf(out, "%-36s  %-19s  %-6s  %-30s  %-16s  %-5s  %s\n",
			run.ID,
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Source,
			truncate(run.PRPPath, 30),
			run.Outcome,
			score,
			theme.ValidityLabel(run.Valid))
	}

	fmt.Fprintf(out, "\nTotal: %d runs\n", len(runs))
}

// HistoryShowCmd prints a single run
type HistoryShowCmd struct {
	ID     string `arg:"" help:"Run ID"`
	Format string `help:"Output format: json or yaml" enum:"json,yaml" default:"json"`
}

// Run executes the history show command
func (h *HistoryShowCmd) Run(cli *CLI) error {
	history, err := cli.Container.History()
	if err != nil {
		return err
	}

	run, err := history.Get(context.Background(), h.ID)
	if err != nil {
		return err
	}

	if h.Format == "yaml" {
		return writeYAML(os.Stdout, run)
	}
	return writeJSON(os.Stdout, run)
}

// HistoryPruneCmd deletes old runs
type HistoryPruneCmd struct {
	OlderThan string `help:"Delete runs older than this (e.g. 72h, 30d); default from settings, else 30d"`
}

// Run executes the history prune command
func (h *HistoryPruneCmd) Run(cli *CLI) error {
	history, err := cli.Container.History()
	if err != nil {
		return err
	}

	retention := services.RetentionPeriod(cli.Container.Settings.RetentionDays())
	if h.OlderThan != "" {
		retention, err = services.ParseRelativeDuration(h.OlderThan)
		if err != nil {
			return fmt.Errorf("invalid --older-than: %w", err)
		}
	}

	deleted, err := history.Prune(context.Background(), retention)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Deleted %d validation runs older than %s\n", deleted, retention)
	return nil
}
