package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// GoalLogPath returns the path to a goal's log file.
func GoalLogPath(dataDir string, goalID int) string {
	return filepath.Join(dataDir, "logs", fmt.Sprintf("goal-%d.log", goalID))
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "goalkeeper.log")
}

// DefaultDataDir returns the data directory under the given data home
// (typically XDG_DATA_HOME or ~/.local/share, resolved by caller).
func DefaultDataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// FormatGoalRef formats a goal ID for display.
// Format: #<id>
func FormatGoalRef(id int) string {
	return "#" + strconv.Itoa(id)
}

// ParseGoalRef parses "#12" or "12" into a goal ID.
// Returns 0 and false if the reference is not a positive integer.
func ParseGoalRef(ref string) (int, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	id, err := strconv.Atoi(ref)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
