package config

import (
	"reflect"
	"strings"

	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "record_history"
	case reflect.Int:
		switch fieldName {
		case "check_concurrency":
			return DefaultCheckConcurrency
		case "history_retention_days":
			return DefaultHistoryRetentionDays
		case "max_log_files":
			return logging.DefaultMaxLogFiles
		}
		return 10
	case reflect.String:
		return "example"
	}

	return nil
}
