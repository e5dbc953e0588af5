package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ShowLogsInput contains the parameters for showing logs.
type ShowLogsInput struct {
	GoalID int // Goal ID to show logs for (0 = global log)
	Lines  int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing logs.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the global or a goal's log.
type ShowLogs struct {
	dataDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(dataDir string) *ShowLogs {
	return &ShowLogs{dataDir: dataDir}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.GlobalLogPath(uc.dataDir)
	if in.GoalID > 0 {
		logPath = domain.GoalLogPath(uc.dataDir, in.GoalID)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", logPath, domain.ErrNoLogFile)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := strings.TrimRight(string(content), "\n")
	if in.Lines > 0 {
		lines := strings.Split(result, "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n")
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
