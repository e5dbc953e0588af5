package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Colors defines the palette used for status columns.
var Colors = struct {
	Incomplete lipgloss.Color
	Succeeded  lipgloss.Color
	Failed     lipgloss.Color
	Deleted    lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}{
	Incomplete: lipgloss.Color("#74B9FF"), // Light blue
	Succeeded:  lipgloss.Color("#00B894"), // Green
	Failed:     lipgloss.Color("#D63031"), // Red
	Deleted:    lipgloss.Color("#636E72"), // Gray
	Muted:      lipgloss.Color("#636E72"), // Gray
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
}

// StatusColor returns the color for a completion status.
func StatusColor(s domain.CompletionStatus) lipgloss.Color {
	switch s {
	case domain.StatusIncomplete:
		return Colors.Incomplete
	case domain.StatusSucceeded:
		return Colors.Succeeded
	case domain.StatusFailed:
		return Colors.Failed
	case domain.StatusDeleted:
		return Colors.Deleted
	default:
		return Colors.Muted
	}
}

// renderStatus renders a status for a listing.
// Colors are dropped automatically when output is not a terminal.
func renderStatus(s domain.CompletionStatus) string {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render(string(s))
}

// renderWarning renders a warning line.
func renderWarning(msg string) string {
	return lipgloss.NewStyle().Foreground(Colors.Warning).Render(msg)
}

// maxNameWidth is the display width of the NAME column in listings.
const maxNameWidth = 48

// truncateName shortens a name to maxNameWidth display cells.
func truncateName(name string) string {
	if runewidth.StringWidth(name) <= maxNameWidth {
		return name
	}
	return runewidth.Truncate(name, maxNameWidth, "...")
}
