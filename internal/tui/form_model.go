package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
)

// focusField is the form element that receives keys
type focusField int

const (
	focusName focusField = iota
	focusAge
	focusContact
	focusAddPatient
	focusPatient
	focusSessionType
	focusPlatform
	focusCost
	focusPayment
	focusNotes
	focusRating
	focusFeedback
	focusStart
	focusEnd
	focusView
	focusDate
	focusTime
	focusSchedule
	focusCount
)

// modalKind is the pop-up currently shown over the form
type modalKind int

const (
	modalNone modalKind = iota
	modalError
	modalInfo
	modalSuccess
	modalHistory
)

// formTickMsg refreshes the session clock
type formTickMsg struct{}

func formTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return formTickMsg{}
	})
}

// FormModel is the main therapylog screen
type FormModel struct {
	controller *clinic.Controller
	width      int
	height     int
	focus      focusField

	// Add Patient
	name    textinput.Model
	age     textinput.Model
	contact textinput.Model

	// Manage Sessions
	patient     selectField
	patientIDs  []uint
	sessionType selectField
	platform    selectField
	cost        textinput.Model
	payment     selectField
	notes       textarea.Model
	rating      ratingField
	feedback    textarea.Model

	// Schedule Session
	calendar calendarField
	clock    textinput.Model

	// Running session clock
	elapsed time.Duration
	ticking bool

	// Pop-ups
	modal      modalKind
	modalTitle string
	modalBody  string
	history    viewport.Model

	quitting bool
}

// NewFormModel creates the form and loads the patient selector
func NewFormModel(controller *clinic.Controller) FormModel {
	m := FormModel{
		controller:  controller,
		name:        newTextInput("Full name", 100),
		age:         newTextInput("Age in years", 3),
		contact:     newTextInput("Phone or email", 100),
		cost:        newTextInput("e.g. 50 or 50.50", 12),
		clock:       newTextInput("HH:MM", 20),
		notes:       newTextArea("What happened in the session", 5),
		feedback:    newTextArea("Patient feedback (optional)", 3),
		patient:     newSelectField(nil),
		sessionType: newSelectField(enumStrings(models.SessionTypes)),
		platform:    newSelectField(enumStrings(models.Platforms)),
		payment:     newSelectField(enumStrings(models.PaymentStatuses)),
		calendar:    newCalendarField(controller.Now()),
		history:     viewport.New(80, 20),
	}
	m.name.Focus()

	if err := m.loadPatients(); err != nil {
		m = m.showModal(modalError, "Error", err.Error())
	}
	if m.controller.State().Active() {
		m.ticking = true
		m.elapsed = m.controller.State().Elapsed(m.controller.Now())
	}

	return m
}

func newTextInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 30
	input.Prompt = ""

	// Apply color scheme
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return input
}

func newTextArea(placeholder string, height int) textarea.Model {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.CharLimit = 2000
	area.SetWidth(40)
	area.SetHeight(height)
	area.Blur()
	return area
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// loadPatients refreshes the patient selector from the store
func (m *FormModel) loadPatients() error {
	options, err := m.controller.LoadPatients()
	if err != nil {
		return err
	}

	labels := make([]string, len(options))
	ids := make([]uint, len(options))
	for i, o := range options {
		labels[i] = o.Label
		ids[i] = o.ID
	}
	m.patient = m.patient.SetOptions(labels)
	m.patientIDs = ids
	return nil
}

// selectedPatientID returns 0 when no patient is picked
func (m FormModel) selectedPatientID() uint {
	if m.patient.index < 0 || m.patient.index >= len(m.patientIDs) {
		return 0
	}
	return m.patientIDs[m.patient.index]
}

// Init initializes the model
func (m FormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.ticking {
		cmds = append(cmds, formTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formTickMsg:
		state := m.controller.State()
		if !state.Active() {
			m.ticking = false
			m.elapsed = 0
			return m, nil
		}
		m.elapsed = state.Elapsed(m.controller.Now())
		return m, formTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = max(msg.Width-8, 20)
		m.history.Height = max(msg.Height-8, 5)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.handleModalKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m.updateFocused(msg)
}

// handleModalKeys closes pop-ups; the history pop-up also scrolls
func (m FormModel) handleModalKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.modal == modalHistory {
		switch msg.String() {
		case "esc", "q", "enter":
			m.modal = modalNone
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter", "esc", " ", "q":
		m.modal = modalNone
	}
	return m, nil
}

// handleKeys processes form navigation and actions
func (m FormModel) handleKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		if m.controller.State().Active() {
			return m.showModal(modalError, "Session running",
				"End the session before leaving.\nctrl+c quits and discards the running session."), nil
		}
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusAddPatient, focusStart, focusEnd, focusView, focusSchedule:
		switch key {
		case "enter", " ":
			return m.press(m.focus)
		case "down", "right":
			return m.setFocus((m.focus + 1) % focusCount)
		case "up", "left":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
		return m, nil

	case focusPatient, focusSessionType, focusPlatform, focusPayment:
		field := m.selectFor(m.focus)
		switch key {
		case "right", "l":
			*field = field.Next()
		case "left", "h":
			*field = field.Prev()
		case "backspace", "delete":
			*field = field.Clear()
		case "enter", "down":
			return m.setFocus(m.focus + 1)
		case "up":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
		return m, nil

	case focusRating:
		switch key {
		case "right", "l", "+":
			m.rating = m.rating.Inc()
		case "left", "h", "-":
			m.rating = m.rating.Dec()
		case "1", "2", "3", "4", "5":
			m.rating.value = int(key[0] - '0')
		case "backspace", "delete", "0":
			m.rating.value = 0
		case "enter", "down":
			return m.setFocus(m.focus + 1)
		case "up":
			return m.setFocus(m.focus - 1)
		}
		return m, nil

	case focusDate:
		switch key {
		case "left", "h":
			m.calendar = m.calendar.MoveDays(-1)
		case "right", "l":
			m.calendar = m.calendar.MoveDays(1)
		case "up", "k":
			m.calendar = m.calendar.MoveDays(-7)
		case "down", "j":
			m.calendar = m.calendar.MoveDays(7)
		case "pgup", "[":
			m.calendar = m.calendar.MoveMonths(-1)
		case "pgdown", "]":
			m.calendar = m.calendar.MoveMonths(1)
		case "t":
			m.calendar = newCalendarField(m.controller.Now())
		case "enter":
			return m.setFocus(m.focus + 1)
		}
		return m, nil

	case focusNotes, focusFeedback:
		// Enter adds a line; tab leaves the text area
		return m.updateFocused(msg)

	default:
		switch key {
		case "enter", "down":
			return m.setFocus(m.focus + 1)
		case "up":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
		return m.updateFocused(msg)
	}
}

// selectFor returns the dropdown bound to a focus position
func (m *FormModel) selectFor(f focusField) *selectField {
	switch f {
	case focusPatient:
		return &m.patient
	case focusSessionType:
		return &m.sessionType
	case focusPlatform:
		return &m.platform
	default:
		return &m.payment
	}
}

// setFocus moves keyboard focus, blurring the previous text widget
func (m FormModel) setFocus(f focusField) (FormModel, tea.Cmd) {
	m.name.Blur()
	m.age.Blur()
	m.contact.Blur()
	m.cost.Blur()
	m.clock.Blur()
	m.notes.Blur()
	m.feedback.Blur()

	m.focus = f

	var cmd tea.Cmd
	switch f {
	case focusName:
		cmd = m.name.Focus()
	case focusAge:
		cmd = m.age.Focus()
	case focusContact:
		cmd = m.contact.Focus()
	case focusCost:
		cmd = m.cost.Focus()
	case focusTime:
		cmd = m.clock.Focus()
	case focusNotes:
		cmd = m.notes.Focus()
	case focusFeedback:
		cmd = m.feedback.Focus()
	}
	return m, cmd
}

// updateFocused forwards a message to the focused text widget
func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusAge:
		m.age, cmd = m.age.Update(msg)
	case focusContact:
		m.contact, cmd = m.contact.Update(msg)
	case focusCost:
		m.cost, cmd = m.cost.Update(msg)
	case focusTime:
		m.clock, cmd = m.clock.Update(msg)
	case focusNotes:
		m.notes, cmd = m.notes.Update(msg)
	case focusFeedback:
		m.feedback, cmd = m.feedback.Update(msg)
	}
	return m, cmd
}

// press runs the action behind a button
func (m FormModel) press(button focusField) (FormModel, tea.Cmd) {
	switch button {
	case focusAddPatient:
		return m.addPatient()
	case focusStart:
		return m.startSession()
	case focusEnd:
		return m.endSession()
	case focusView:
		return m.viewSessions()
	case focusSchedule:
		return m.scheduleSession()
	}
	return m, nil
}

func (m FormModel) addPatient() (FormModel, tea.Cmd) {
	_, err := m.controller.AddPatient(clinic.PatientInput{
		Name:    m.name.Value(),
		Age:     m.age.Value(),
		Contact: m.contact.Value(),
	})
	if err != nil {
		return m.showError(err), nil
	}

	m.name.Reset()
	m.age.Reset()
	m.contact.Reset()
	if err := m.loadPatients(); err != nil {
		return m.showError(err), nil
	}
	return m.showModal(modalSuccess, "Success", "Patient added successfully!"), nil
}

func (m FormModel) startSession() (FormModel, tea.Cmd) {
	state, err := m.controller.StartSession(m.selectedPatientID())
	if err != nil {
		return m.showError(err), nil
	}

	name := m.patient.Value()
	if _, after, ok := strings.Cut(name, ":"); ok {
		name = strings.TrimSpace(after)
	}

	m.elapsed = state.Elapsed(m.controller.Now())
	m = m.showModal(modalInfo, "Info", fmt.Sprintf("Session started for %s", name))
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, formTick()
}

func (m FormModel) endSession() (FormModel, tea.Cmd) {
	session, err := m.controller.EndSession(clinic.SessionOutcome{
		Notes:         m.notes.Value(),
		SessionType:   m.sessionType.Value(),
		Platform:      m.platform.Value(),
		Cost:          m.cost.Value(),
		PaymentStatus: m.payment.Value(),
		Rating:        m.rating.value,
		Feedback:      m.feedback.Value(),
	})
	if err != nil {
		return m.showError(err), nil
	}

	m.notes.Reset()
	m.feedback.Reset()
	m.cost.Reset()
	m.payment = m.payment.Clear()
	m.rating = ratingField{}
	m.elapsed = 0
	return m.showModal(modalSuccess, "Success", fmt.Sprintf("Session ended. Duration: %d minutes.", session.Duration)), nil
}

func (m FormModel) viewSessions() (FormModel, tea.Cmd) {
	history, err := m.controller.ViewSessions(m.selectedPatientID())
	if errors.Is(err, clinic.ErrNoSessions) {
		return m.showModal(modalInfo, "Info", "No sessions found for the selected patient."), nil
	}
	if err != nil {
		return m.showError(err), nil
	}

	m.history.SetContent(history)
	m.history.GotoTop()
	m.modal = modalHistory
	m.modalTitle = fmt.Sprintf("Session History · %s", m.patient.Value())
	return m, nil
}

func (m FormModel) scheduleSession() (FormModel, tea.Cmd) {
	_, err := m.controller.ScheduleSession(clinic.ScheduleInput{
		PatientID: m.selectedPatientID(),
		Date:      m.calendar.Date(),
		Time:      m.clock.Value(),
		Platform:  m.platform.Value(),
	})
	if err != nil {
		return m.showError(err), nil
	}

	m.platform = m.platform.Clear()
	m.clock.Reset()
	return m.showModal(modalSuccess, "Success", "Session scheduled successfully!"), nil
}

// showError picks the pop-up for an operation error
func (m FormModel) showError(err error) FormModel {
	switch {
	case errors.Is(err, clinic.ErrNoPatientSelected):
		return m.showModal(modalError, "Error", "Please select a patient first!")
	case errors.Is(err, clinic.ErrNoSessionInProgress):
		return m.showModal(modalError, "Error", "No session in progress!")
	case errors.Is(err, clinic.ErrSessionInProgress):
		return m.showModal(modalError, "Error", "A session is already running. End it first!")
	case clinic.IsValidation(err):
		return m.showModal(modalError, "Error", err.Error())
	default:
		return m.showModal(modalError, "Error", fmt.Sprintf("Something went wrong: %v", err))
	}
}

func (m FormModel) showModal(kind modalKind, title, body string) FormModel {
	m.modal = kind
	m.modalTitle = title
	m.modalBody = body
	return m
}

// View renders the TUI
func (m FormModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.modal {
	case modalHistory:
		return m.renderHistory()
	case modalError, modalInfo, modalSuccess:
		return m.renderModal()
	}

	addPatient := m.renderSection("Add Patient", []string{
		m.renderRow("Name", focusName, m.name.View()),
		m.renderRow("Age", focusAge, m.age.View()),
		m.renderRow("Contact", focusContact, m.contact.View()),
		m.renderButton("Add Patient", focusAddPatient),
	})

	manage := m.renderSection("Manage Sessions", []string{
		m.renderRow("Select Patient", focusPatient, m.patient.View(m.focus == focusPatient, "no patient selected")),
		m.renderRow("Session Type", focusSessionType, m.sessionType.View(m.focus == focusSessionType, "choose")),
		m.renderRow("Platform", focusPlatform, m.platform.View(m.focus == focusPlatform, "online only")),
		m.renderRow("Cost ($)", focusCost, m.cost.View()),
		m.renderRow("Payment Status", focusPayment, m.payment.View(m.focus == focusPayment, "choose")),
		m.renderRow("Session Notes", focusNotes, m.notes.View()),
		m.renderRow("Rating (1-5)", focusRating, m.rating.View(m.focus == focusRating)),
		m.renderRow("Feedback", focusFeedback, m.feedback.View()),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderButton("Start Session", focusStart), " ",
			m.renderButton("End Session", focusEnd), " ",
			m.renderButton("View Sessions", focusView)),
	})

	schedule := m.renderSection("Schedule Session", []string{
		m.renderRow("Date", focusDate, m.calendar.View(m.focus == focusDate)),
		m.renderRow("Time (HH:MM)", focusTime, m.clock.View()),
		m.renderButton("Schedule Session", focusSchedule),
	})

	status := m.renderStatus()
	help := m.renderHelpBar()

	// Narrow terminals get a single column
	if m.width < 110 {
		return lipgloss.JoinVertical(lipgloss.Left, status, addPatient, manage, schedule, help)
	}

	left := lipgloss.JoinVertical(lipgloss.Left, addPatient, manage)
	right := lipgloss.JoinVertical(lipgloss.Left, status, schedule)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		help,
	)
}

func (m FormModel) renderSection(title string, rows []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	body := titleStyle.Render(title) + "\n" + strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Render(body)
}

func (m FormModel) renderRow(label string, f focusField, widget string) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Align(lipgloss.Right).
		Foreground(lipgloss.Color(ColorSecondaryText))
	if m.focus == f {
		labelStyle = labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label+":"), " ", widget)
}

func (m FormModel) renderButton(label string, f focusField) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder))
	if m.focus == f {
		style = style.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	}
	return style.Render(label)
}

// renderStatus shows the running session clock or the idle hint
func (m FormModel) renderStatus() string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(48)

	state := m.controller.State()
	if !state.Active() {
		idle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		return panel.BorderForeground(lipgloss.Color(ColorBorder)).
			Render(idle.Render("No session in progress.\nPick a patient and press Start Session."))
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(fmt.Sprintf("⏱  SESSION IN PROGRESS · patient #%d", state.PatientID))
	started := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(fmt.Sprintf("Started at %s", state.StartedAt.Format("15:04:05")))

	return panel.BorderForeground(lipgloss.Color(ColorAccentMain)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", renderBigClock(m.elapsed), "", started))
}

// renderModal renders the message pop-up in the middle of the screen
func (m FormModel) renderModal() string {
	border := ColorAccentBright
	switch m.modal {
	case modalError:
		border = ColorError
	case modalSuccess:
		border = ColorSuccess
	case modalInfo:
		border = ColorWarning
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(border))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.modalTitle),
		"",
		m.modalBody,
		"",
		hintStyle.Render("Enter or Esc to close"),
	)

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHistory renders the scrollable session history
func (m FormModel) renderHistory() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(m.history.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.modalTitle),
		box,
		hintStyle.Render(fmt.Sprintf("↑/↓ scroll · %3.f%% · esc close", m.history.ScrollPercent()*100)),
	)
}

func (m FormModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	return helpStyle.Render("tab/shift+tab move · ←/→ change choice · enter press button · pgup/pgdn month · esc quit")
}

// RunFormTUI starts the interactive form
func RunFormTUI(controller *clinic.Controller) error {
	p := tea.NewProgram(NewFormModel(controller), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(FormModel); ok && m.controller.State().Active() {
		fmt.Println("⚠️  Quit with a session in progress; it was not recorded.")
	}
	return nil
}
