package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimeBound parses an absolute or relative point in time.
// Accepted forms: RFC3339, "2006-01-02", or a duration ago such as "90m",
// "2h" or "7d".
func ParseTimeBound(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}

	d, err := ParseRelativeDuration(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339, YYYY-MM-DD or a duration like 2h or 7d", value)
	}
	return now.Add(-d), nil
}

// ParseRelativeDuration parses a Go duration, with "d" accepted for days
func ParseRelativeDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid day count %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}
