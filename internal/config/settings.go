package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/livingtree/prpcheck/internal/paths"
)

// Defaults applied when a setting is absent
const (
	DefaultCheckConcurrency     = 4
	DefaultHistoryRetentionDays = 30
)

// Settings represents the structure of $PRPCHECK_HOME/settings.json
type Settings struct {
	CheckConcurrency     *int  `json:"check_concurrency,omitempty"`
	Debug                *bool `json:"debug,omitempty"`
	HistoryRetentionDays *int  `json:"history_retention_days,omitempty"`
	MaxLogFiles          *int  `json:"max_log_files,omitempty"`
	RecordHistory        *bool `json:"record_history,omitempty"`
}

// ShouldRecordHistory reports whether verdicts are stored; on by default
func (s *Settings) ShouldRecordHistory() bool {
	if s == nil || s.RecordHistory == nil {
		return true
	}
	return *s.RecordHistory
}

// Concurrency returns how many files check validates at once
func (s *Settings) Concurrency() int {
	if s == nil || s.CheckConcurrency == nil || *s.CheckConcurrency < 1 {
		return DefaultCheckConcurrency
	}
	return *s.CheckConcurrency
}

// RetentionDays returns the default age limit used by history prune
func (s *Settings) RetentionDays() int {
	if s == nil || s.HistoryRetentionDays == nil || *s.HistoryRetentionDays < 1 {
		return DefaultHistoryRetentionDays
	}
	return *s.HistoryRetentionDays
}

// LoadSettings loads settings from $PRPCHECK_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
