package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
	"github.com/balkashynov/therapylog/internal/parser"
)

// PatientListModel is the browsable patient table with a billing panel
type PatientListModel struct {
	width  int
	height int

	// Patient data
	patients []models.Patient
	billing  map[uint]clinic.PatientBilling
	visible  []int // indexes into patients after filtering
	selected int   // index into visible

	// Search state
	searchActive bool
	searchQuery  string

	// Pagination
	currentPage     int
	patientsPerPage int
}

// NewPatientListModel creates a new patient list TUI model
func NewPatientListModel(patients []models.Patient, billing []clinic.PatientBilling) PatientListModel {
	byPatient := make(map[uint]clinic.PatientBilling, len(billing))
	for _, b := range billing {
		byPatient[b.PatientID] = b
	}

	m := PatientListModel{
		patients:        patients,
		billing:         byPatient,
		patientsPerPage: 10,
	}
	m.applyFilter()
	return m
}

// applyFilter rebuilds the visible rows from the search query
func (m *PatientListModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.searchQuery))
	m.visible = m.visible[:0]
	for i, p := range m.patients {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Contact), query) ||
			fmt.Sprint(p.ID) == query {
			m.visible = append(m.visible, i)
		}
	}
	m.selected = 0
	m.currentPage = 0
}

// Selected returns the highlighted patient, if any
func (m PatientListModel) Selected() (models.Patient, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return models.Patient{}, false
	}
	return m.patients[m.visible[m.selected]], true
}

// Init initializes the model
func (m PatientListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PatientListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height minus header, pagination, help and borders
		m.patientsPerPage = max(m.height-10, 3)
		m.currentPage = m.selected / m.patientsPerPage
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			return m.moveSelection(-1), nil
		case "down", "j":
			return m.moveSelection(1), nil
		case "left", "h":
			return m.moveSelection(-m.patientsPerPage), nil
		case "right", "l":
			return m.moveSelection(m.patientsPerPage), nil
		case "/":
			m.searchActive = true
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKeys handles key input when in search mode
func (m PatientListModel) handleSearchKeys(msg tea.KeyMsg) (PatientListModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchActive = false
		m.searchQuery = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.searchActive = false
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.applyFilter()
	case tea.KeySpace:
		m.searchQuery += " "
		m.applyFilter()
	}
	return m, nil
}

// moveSelection moves the highlight by delta rows, following it across pages
func (m PatientListModel) moveSelection(delta int) PatientListModel {
	if len(m.visible) == 0 {
		return m
	}
	m.selected = min(max(m.selected+delta, 0), len(m.visible)-1)
	m.currentPage = m.selected / m.patientsPerPage
	return m
}

// View renders the TUI
func (m PatientListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTable(leftWidth),
		" ",
		m.renderDetails(rightWidth),
	)

	bottom := m.renderHelpBar()
	if m.searchActive {
		bottom = m.renderSearchBar()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, "", bottom)
}

// renderTable renders the left panel with the patient table
func (m PatientListModel) renderTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-24s %-4s %s", "ID", "NAME", "AGE", "CONTACT")))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		if m.searchQuery != "" {
			b.WriteString(emptyStyle.Render("No patients match \"" + m.searchQuery + "\""))
		} else {
			b.WriteString(emptyStyle.Render("No patients yet. Add one with 'therapylog patient add'."))
		}
	}

	start := m.currentPage * m.patientsPerPage
	end := min(start+m.patientsPerPage, len(m.visible))
	for row := start; row < end; row++ {
		p := m.patients[m.visible[row]]

		age := "-"
		if p.Age != nil {
			age = fmt.Sprint(*p.Age)
		}
		name := truncate(p.Name, 24)
		line := fmt.Sprintf("%-5d %-24s %-4s %s", p.ID, name, age, truncate(p.Contact, max(width-40, 8)))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		if row == m.selected {
			style = style.
				Background(lipgloss.Color(ColorAccentMain)).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)
		}
		b.WriteString(style.Render(line))
		if row < end-1 {
			b.WriteString("\n")
		}
	}

	if pages := (len(m.visible) + m.patientsPerPage - 1) / m.patientsPerPage; pages > 1 {
		pageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
		b.WriteString("\n\n")
		b.WriteString(pageStyle.Render(fmt.Sprintf("Page %d/%d", m.currentPage+1, pages)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// renderDetails renders the right panel with the selected patient's billing
func (m PatientListModel) renderDetails(width int) string {
	var b strings.Builder

	patient, ok := m.Selected()
	if !ok {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("Select a patient to view details"))
	} else {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText))
		b.WriteString(titleStyle.Render(patient.Label()))
		b.WriteString("\n\n")

		b.WriteString("Contact: ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(patient.Contact))
		b.WriteString("\n\n")

		bill, found := m.billing[patient.ID]
		if !found {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("No sessions yet"))
		} else {
			b.WriteString(fmt.Sprintf("Sessions held: %d (%d min)\n", bill.Held, bill.Minutes))
			b.WriteString(fmt.Sprintf("Upcoming:      %d\n\n", bill.Scheduled))

			b.WriteString("Paid:    ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(parser.FormatCost(bill.Paid)))
			b.WriteString("\nPending: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(parser.FormatCost(bill.Pending)))
			b.WriteString("\nOverdue: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(parser.FormatCost(bill.Overdue)))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// renderSearchBar renders the search bar when active
func (m PatientListModel) renderSearchBar() string {
	searchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(m.width - 2)

	return searchStyle.Render("Search: " + m.searchQuery + "█")
}

// renderHelpBar renders the help bar with hotkey hints
func (m PatientListModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ nav · ←/→ page · / search · q/esc quit")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// RunPatientListTUI shows the patient table
func RunPatientListTUI(patients []models.Patient, billing []clinic.PatientBilling) error {
	p := tea.NewProgram(NewPatientListModel(patients, billing), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
