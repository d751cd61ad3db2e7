package domain

import "time"

// RunSource identifies what triggered a validation
type RunSource string

const (
	SourceCheck RunSource = "check"
	SourceHook  RunSource = "hook"
)

// ValidationRun is a verdict recorded in the history
type ValidationRun struct {
	CWD             string     `json:"cwd,omitempty" yaml:"cwd,omitempty"`
	CreatedAt       time.Time  `json:"created_at" yaml:"created_at"`
	Error           string     `json:"error,omitempty" yaml:"error,omitempty"`
	Heuristics      Heuristics `json:"heuristics" yaml:"heuristics"`
	ID              string     `json:"id" yaml:"id"`
	MissingSections []string   `json:"missing_sections,omitempty" yaml:"missing_sections,omitempty"`
	Outcome         Outcome    `json:"outcome" yaml:"outcome"`
	PRPPath         string     `json:"prp_path,omitempty" yaml:"prp_path,omitempty"`
	Score           *int       `json:"score,omitempty" yaml:"score,omitempty"`
	SessionID       string     `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Source          RunSource  `json:"source" yaml:"source"`
	Valid           bool       `json:"valid" yaml:"valid"`
}
