package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cronozapp/cronoz/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#8FD694") // Green
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleActivity = lipgloss.NewStyle().
			Bold(true)

	styleDuration = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title line.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// ActivityName renders an activity name, tinted with the activity's own
// color key when it has one.
func (c *CLIFormatter) ActivityName(a *model.Activity) string {
	if a == nil {
		return "unknown"
	}
	if c.IsColorEnabled() && a.Color != "" {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(a.Color)).Render(a.Name)
	}
	return c.render(styleActivity, a.Name)
}

// Duration renders a seconds value with the duration style.
func (c *CLIFormatter) Duration(seconds float64) string {
	return c.render(styleDuration, FormatSeconds(seconds))
}

// PrintTrackingStarted prints a tracking started message.
func (c *CLIFormatter) PrintTrackingStarted(a *model.Activity, rec *model.TimeRecord) {
	c.Success("Started tracking " + c.ActivityName(a))
	c.Printf("  Started: %s\n", FormatTime(rec.StartTime))
}

// PrintTrackingStopped prints a tracking stopped message.
func (c *CLIFormatter) PrintTrackingStopped(a *model.Activity, rec *model.TimeRecord) {
	c.Success("Stopped tracking " + c.ActivityName(a))
	c.Printf("  Duration: %s\n", c.Duration(rec.Seconds()))
	c.Printf("  Started: %s\n", FormatTime(rec.StartTime))
	if rec.EndTime != nil {
		c.Printf("  Ended: %s\n", FormatTime(*rec.EndTime))
	}
}

// PrintNoActiveTracking prints a message when the system is idle.
func (c *CLIFormatter) PrintNoActiveTracking() {
	c.Muted("No active tracking.")
	c.Muted("Use 'cronoz start <activity>' to begin.")
}

// Bar renders a proportional bar for summary charts.
func Bar(seconds, maxSeconds float64, width int) string {
	if maxSeconds <= 0 || width <= 0 {
		return ""
	}
	filled := int(seconds / maxSeconds * float64(width))
	if filled > width {
		filled = width
	}
	if seconds > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
