package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the accepted textual timestamp layouts, most specific first.
// Layouts without a zone are interpreted in the local time zone.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a user-supplied time into unix milliseconds.
// Accepts RFC3339, "2006-01-02 15:04", "2006-01-02", or a raw integer of milliseconds.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidTime, s)
		}
		return ms, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// FormatTimestamp formats unix milliseconds for display.
// Zero renders as "-".
func FormatTimestamp(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// ParseDurationMs parses a Go duration ("90m", "1h30m") into milliseconds.
func ParseDurationMs(s string) (int64, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse duration %q: negative", s)
	}
	return d.Milliseconds(), nil
}

// FormatDurationMs formats milliseconds as a Go duration string.
func FormatDurationMs(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).String()
}
