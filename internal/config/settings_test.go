package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("PRPCHECK_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.True(t, settings.ShouldRecordHistory())
	assert.Equal(t, DefaultCheckConcurrency, settings.Concurrency())
	assert.Equal(t, DefaultHistoryRetentionDays, settings.RetentionDays())
}

func TestLoadSettings_ParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PRPCHECK_HOME", home)

	content := `{"debug": true, "record_history": false, "check_concurrency": 2, "history_retention_days": 7, "max_log_files": 5}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.False(t, settings.ShouldRecordHistory())
	assert.Equal(t, 2, settings.Concurrency())
	assert.Equal(t, 7, settings.RetentionDays())
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PRPCHECK_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{not json"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSettingsAccessors_IgnoreNonPositive(t *testing.T) {
	settings := &Settings{CheckConcurrency: intPtr(0), HistoryRetentionDays: intPtr(-1)}

	assert.Equal(t, DefaultCheckConcurrency, settings.Concurrency())
	assert.Equal(t, DefaultHistoryRetentionDays, settings.RetentionDays())
}

func TestSettingsAccessors_NilSafe(t *testing.T) {
	var settings *Settings

	assert.True(t, settings.ShouldRecordHistory())
	assert.Equal(t, DefaultCheckConcurrency, settings.Concurrency())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 5)
	assert.Equal(t, true, example["record_history"])
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, DefaultCheckConcurrency, example["check_concurrency"])
	assert.Equal(t, 1000, example["max_log_files"])
}
