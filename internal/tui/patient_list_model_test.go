package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
)

func samplePatients() []models.Patient {
	age := 34
	return []models.Patient{
		{ID: 1, Name: "Jane Doe", Age: &age, Contact: "jane@example.com"},
		{ID: 2, Name: "Bob Stone", Contact: "555-0100"},
		{ID: 3, Name: "Ann Lee", Contact: "ann@example.com"},
	}
}

func updateList(m PatientListModel, msg tea.Msg) PatientListModel {
	next, _ := m.Update(msg)
	return next.(PatientListModel)
}

func TestPatientListSelection(t *testing.T) {
	m := NewPatientListModel(samplePatients(), nil)
	m = updateList(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	if p, ok := m.Selected(); !ok || p.ID != 1 {
		t.Fatalf("initial selection = %+v, %v", p, ok)
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateList(m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateList(m, tea.KeyMsg{Type: tea.KeyDown})
	if p, _ := m.Selected(); p.ID != 3 {
		t.Fatalf("selection should stop at last row, got %d", p.ID)
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyLeft})
	if p, _ := m.Selected(); p.ID != 1 {
		t.Fatalf("page left should clamp to first row, got %d", p.ID)
	}
}

func TestPatientListSearch(t *testing.T) {
	m := NewPatientListModel(samplePatients(), nil)
	m = updateList(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.searchActive {
		t.Fatalf("slash should open search")
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("example")})
	if len(m.visible) != 2 {
		t.Fatalf("contact search should match 2 patients, got %d", len(m.visible))
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searchActive {
		t.Fatalf("enter should close the search bar")
	}
	if p, _ := m.Selected(); p.ID != 1 {
		t.Fatalf("selected = %d", p.ID)
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = updateList(m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.visible) != 3 || m.searchQuery != "" {
		t.Fatalf("esc should clear the filter")
	}
}

func TestPatientListDetails(t *testing.T) {
	billing := []clinic.PatientBilling{{
		PatientID: 1,
		Name:      "Jane Doe",
		Held:      2,
		Minutes:   95,
		Paid:      decimal.RequireFromString("50"),
		Pending:   decimal.RequireFromString("60.5"),
		Overdue:   decimal.Zero,
	}}
	m := NewPatientListModel(samplePatients(), billing)
	m = updateList(m, tea.WindowSizeMsg{Width: 140, Height: 30})

	view := m.View()
	for _, want := range []string{"1: Jane Doe", "Sessions held: 2 (95 min)", "$50.00", "$60.50"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m = updateList(m, tea.KeyMsg{Type: tea.KeyDown})
	if view := m.View(); !strings.Contains(view, "No sessions yet") {
		t.Fatalf("patient without sessions should say so:\n%s", view)
	}
}

func TestPatientListEmpty(t *testing.T) {
	m := NewPatientListModel(nil, nil)
	m = updateList(m, tea.WindowSizeMsg{Width: 120, Height: 30})
	if _, ok := m.Selected(); ok {
		t.Fatalf("empty list should have no selection")
	}
	if view := m.View(); !strings.Contains(view, "No patients yet") {
		t.Fatalf("view:\n%s", view)
	}
}
