package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// calendarField is a month-grid date picker
type calendarField struct {
	selected time.Time
	today    time.Time
}

func newCalendarField(now time.Time) calendarField {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return calendarField{selected: today, today: today}
}

// Date returns the picked day at midnight
func (c calendarField) Date() time.Time {
	return c.selected
}

// MoveDays shifts the selection by n days
func (c calendarField) MoveDays(n int) calendarField {
	c.selected = c.selected.AddDate(0, 0, n)
	return c
}

// MoveMonths shifts the selection by n months, clamping to the last day of
// the target month (31 Jan + 1 month = 28/29 Feb).
func (c calendarField) MoveMonths(n int) calendarField {
	first := time.Date(c.selected.Year(), c.selected.Month(), 1, 0, 0, 0, 0, c.selected.Location()).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := c.selected.Day()
	if day > lastDay {
		day = lastDay
	}
	c.selected = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
	return c
}

func (c calendarField) View(focused bool) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	if focused {
		headerStyle = headerStyle.Foreground(lipgloss.Color(ColorAccentBright))
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-20s", c.selected.Format("January 2006"))))
	b.WriteString("\n")

	weekdayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(weekdayStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	first := time.Date(c.selected.Year(), c.selected.Month(), 1, 0, 0, 0, 0, c.selected.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7 // Monday first

	dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	todayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccentMain)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
	if !focused {
		selectedStyle = selectedStyle.Background(lipgloss.Color(ColorBorder))
	}

	b.WriteString(strings.Repeat("   ", offset))
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == c.selected.Day():
			b.WriteString(selectedStyle.Render(cell))
		case c.today.Year() == first.Year() && c.today.Month() == first.Month() && c.today.Day() == day:
			b.WriteString(todayStyle.Render(cell))
		default:
			b.WriteString(dayStyle.Render(cell))
		}

		col++
		if col == 7 {
			col = 0
			if day != daysInMonth {
				b.WriteString("\n")
			}
		} else if day != daysInMonth {
			b.WriteString(" ")
		}
	}

	return b.String()
}
