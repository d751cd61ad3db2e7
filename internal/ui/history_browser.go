package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/theme"
)

const (
	minTableHeight = 5
	reservedLines  = 6
)

// HistoryBrowser is a read-only table of recorded validation runs
type HistoryBrowser struct {
	keys        HistoryKeys
	runs        []domain.ValidationRun
	showDetail  bool
	table       table.Model
	windowWidth int
}

// NewHistoryBrowser creates a browser over runs, newest first
func NewHistoryBrowser(runs []domain.ValidationRun) *HistoryBrowser {
	columns := []table.Column{
		{Title: "Time", Width: 19},
		{Title: "Source", Width: 6},
		{Title: "PRP", Width: 36},
		{Title: "Outcome", Width: 16},
		{Title: "Score", Width: 5},
		{Title: "Valid", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(historyRows(runs)),
		table.WithFocused(true),
		table.WithHeight(min(len(runs)+1, 15)),
	)

	styles := table.DefaultStyles()
	styles.Header = theme.TableHeaderStyle
	styles.Selected = theme.TableSelectedStyle
	t.SetStyles(styles)

	return &HistoryBrowser{
		keys:  newHistoryKeys(),
		runs:  runs,
		table: t,
	}
}

func historyRows(runs []domain.ValidationRun) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, run := range runs {
		score := "-"
		if run.Score != nil {
			score = strconv.Itoa(*run.Score)
		}
		valid := "no"
		if run.Valid {
			valid = "yes"
		}
		rows[i] = table.Row{
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(run.Source),
			run.PRPPath,
			string(run.Outcome),
			score,
			valid,
		}
	}
	return rows
}

// Init implements tea.Model
func (m *HistoryBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *HistoryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.table.SetHeight(max(msg.Height-reservedLines, minTableHeight))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.showDetail && key.Matches(msg, m.keys.Back):
			m.showDetail = false
			return m, nil
		case !m.showDetail && key.Matches(msg, m.keys.Detail):
			if len(m.runs) > 0 {
				m.showDetail = true
			}
			return m, nil
		}
	}

	if m.showDetail {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the run under the cursor, if any
func (m *HistoryBrowser) Selected() (domain.ValidationRun, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.runs) {
		return domain.ValidationRun{}, false
	}
	return m.runs[cursor], true
}

// View implements tea.Model
func (m *HistoryBrowser) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("PRP validation history (%d runs)", len(m.runs))))
	b.WriteString("\n")

	if len(m.runs) == 0 {
		b.WriteString(theme.MutedStyle.Render("No validation runs recorded."))
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render(helpLine(m.keys.Quit)))
		return b.String()
	}

	if m.showDetail {
		run, _ := m.Selected()
		b.WriteString(renderRunDetail(run))
		b.WriteString(theme.HelpStyle.Render(helpLine(m.keys.Back, m.keys.Quit)))
		return b.String()
	}

	b.WriteString(theme.TableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(helpLine(m.keys.Up, m.keys.Down, m.keys.Detail, m.keys.Quit)))
	return b.String()
}

// renderRunDetail renders every recorded field of a run
func renderRunDetail(run domain.ValidationRun) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(theme.DetailLabelStyle.Render(label))
		b.WriteString(theme.DetailValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("ID", run.ID)
	row("Time", run.CreatedAt.Local().Format("2006-01-02 15:04:05 MST"))
	row("Source", string(run.Source))
	row("PRP", theme.PathStyle.Render(run.PRPPath))
	row("Outcome", string(run.Outcome))
	row("Result", theme.ValidityLabel(run.Valid))
	if run.Score != nil {
		row("Score", strconv.Itoa(*run.Score))
		row("has_pnpm", strconv.FormatBool(run.Heuristics.HasPnpm))
		row("has_docker", strconv.FormatBool(run.Heuristics.HasDocker))
		row("has_validation", strconv.FormatBool(run.Heuristics.HasValidation))
	}
	if len(run.MissingSections) > 0 {
		row("Missing sections", strings.Join(run.MissingSections, ", "))
	}
	if run.Error != "" {
		row("Error", theme.ErrorStyle.Render(run.Error))
	}
	if run.SessionID != "" {
		row("Session", run.SessionID)
	}
	if run.CWD != "" {
		row("Working dir", run.CWD)
	}
	return b.String()
}
