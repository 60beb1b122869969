// Package tui provides the live timer view for Cronoz. It is presentation
// only: the elapsed time is recomputed from the open record's start time on
// every tick, never stored.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/output"
	"github.com/cronozapp/cronoz/internal/tracker"
)

var (
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)

	styleTracking = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8FD694"))

	styleIdle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	styleElapsed = lipgloss.NewStyle().
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// tickMsg is sent once per second to re-render the elapsed time.
type tickMsg time.Time

// refreshMsg re-reads tracking state from the store.
type refreshMsg struct {
	active   *model.TimeRecord
	activity *model.Activity
	err      error
}

// WatchModel is the bubbletea model for the live timer view.
type WatchModel struct {
	tracker *tracker.Tracker

	active   *model.TimeRecord
	activity *model.Activity
	width    int
	err      error
}

// NewWatchModel creates the live timer model.
func NewWatchModel(tr *tracker.Tracker) *WatchModel {
	return &WatchModel{tracker: tr}
}

// Init starts the tick loop and the first state load.
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.refreshCmd())
}

// Update handles messages.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refreshCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		// Re-read state every tick so a stop issued from another
		// terminal shows up within a second.
		return m, tea.Batch(tickCmd(), m.refreshCmd())

	case refreshMsg:
		m.active = msg.active
		m.activity = msg.activity
		m.err = msg.err
	}
	return m, nil
}

// View renders the timer box.
func (m *WatchModel) View() string {
	if m.err != nil {
		return styleBox.Render("error: " + m.err.Error())
	}

	if m.active == nil {
		content := styleIdle.Render("Not tracking") + "\n\n" +
			styleHint.Render("q to quit")
		return styleBox.Render(content)
	}

	name := m.active.ActivityID
	if m.activity != nil {
		name = m.activity.Name
	}

	elapsed := m.active.Elapsed(time.Now()).Seconds()
	content := styleTracking.Render("● "+name) + "\n\n" +
		styleElapsed.Render(output.FormatSeconds(elapsed)) + "\n\n" +
		styleHint.Render(fmt.Sprintf("since %s · q to quit", output.FormatTimeShort(m.active.StartTime)))
	return styleBox.Render(content)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.tracker.Active()
		if err != nil {
			return refreshMsg{err: err}
		}
		var activity *model.Activity
		if active != nil {
			activity, err = m.tracker.Registry.Get(active.ActivityID)
			if err != nil {
				return refreshMsg{err: err}
			}
		}
		return refreshMsg{active: active, activity: activity}
	}
}

// Run starts the live timer view and blocks until the user quits.
func Run(tr *tracker.Tracker) error {
	_, err := tea.NewProgram(NewWatchModel(tr), tea.WithAltScreen()).Run()
	return err
}
