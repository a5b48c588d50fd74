package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
)

// TimerModel shows a full-screen clock for the running session
type TimerModel struct {
	width   int
	height  int
	state   clinic.SessionState
	patient models.Patient
	now     func() time.Time

	// Timer state
	elapsedTime time.Duration

	// Animation state
	timerAnimation int

	// UI state
	stopping bool // True when user pressed S: end and record the session
	exiting  bool // True when user pressed ESC/Q: leave without recording
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(state clinic.SessionState, patient models.Patient, now func() time.Time) TimerModel {
	return TimerModel{
		state:       state,
		patient:     patient,
		now:         now,
		elapsedTime: state.Elapsed(now()),
	}
}

// Stopping reports whether the user asked to end and record the session
func (m TimerModel) Stopping() bool {
	return m.stopping
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	// Start both timer and animation tickers
	return tea.Batch(timerTick(), animationTick())
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = m.state.Elapsed(m.now())

		// Continue ticking if not stopping or exiting
		if !m.stopping && !m.exiting {
			return m, timerTick()
		}
		return m, nil

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4

		if !m.stopping && !m.exiting {
			return m, animationTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S", "enter":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	helpBar := helpStyle.Render("s/enter end session & record · esc/q leave without recording")

	panel := m.renderTimerPanel(m.width, m.height-2)
	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

// renderTimerPanel renders the centered clock panel
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	// Animated header
	animChars := []string{"⏱", "⏲", "⏱", "⏲"}
	animChar := animChars[m.timerAnimation]
	headerText := fmt.Sprintf("%s  SESSION IN PROGRESS  %s", animChar, animChar)

	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	components = append(components, center.
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(headerText))

	components = append(components, center.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(m.patient.Label()))

	clockLines := strings.Split(renderBigClock(m.elapsedTime), "\n")
	for i, line := range clockLines {
		clockLines[i] = lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(line)
	}
	components = append(components, strings.Join(clockLines, "\n"))

	components = append(components, center.
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(fmt.Sprintf("Started at %s", m.state.StartedAt.Format("15:04:05"))))

	content := strings.Join(components, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// bigDigits holds 5-row ASCII art for the clock
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// clockText formats a duration as MM:SS, or HH:MM:SS past the hour
func clockText(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// renderBigClock renders ASCII art clock
func renderBigClock(d time.Duration) string {
	var lines [5]strings.Builder

	for _, char := range clockText(d) {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rendered := make([]string, 5)
	for i := range lines {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}

// RunTimerTUI shows the clock for a running session. It returns true when the
// user chose to end the session, false when they left without recording.
func RunTimerTUI(state clinic.SessionState, patient models.Patient, now func() time.Time) (bool, error) {
	model := NewTimerModel(state, patient, now)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	timerModel, ok := finalModel.(TimerModel)
	if !ok {
		return false, nil
	}
	return timerModel.Stopping(), nil
}
