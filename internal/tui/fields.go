package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// selectField is a dropdown with a fixed set of choices. index -1 means nothing chosen.
type selectField struct {
	options []string
	index   int
}

func newSelectField(options []string) selectField {
	return selectField{options: options, index: -1}
}

// Value returns the chosen option or "" when nothing is chosen
func (f selectField) Value() string {
	if f.index < 0 || f.index >= len(f.options) {
		return ""
	}
	return f.options[f.index]
}

// Next moves to the next choice, wrapping around
func (f selectField) Next() selectField {
	if len(f.options) == 0 {
		return f
	}
	f.index = (f.index + 1) % len(f.options)
	return f
}

// Prev moves to the previous choice, wrapping around
func (f selectField) Prev() selectField {
	if len(f.options) == 0 {
		return f
	}
	if f.index <= 0 {
		f.index = len(f.options) - 1
	} else {
		f.index--
	}
	return f
}

// Clear drops the current choice
func (f selectField) Clear() selectField {
	f.index = -1
	return f
}

// SetOptions replaces the choices, keeping the current one if it still exists
func (f selectField) SetOptions(options []string) selectField {
	current := f.Value()
	f.options = options
	f.index = -1
	for i, o := range options {
		if o == current {
			f.index = i
		}
	}
	return f
}

func (f selectField) View(focused bool, placeholder string) string {
	value := f.Value()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	if value == "" {
		value = placeholder
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	}
	if focused {
		arrows := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		return arrows.Render("‹ ") + style.Render(value) + arrows.Render(" ›")
	}
	return "  " + style.Render(value)
}

// ratingField is the 1-5 spinner. 0 means not rated.
type ratingField struct {
	value int
}

func (f ratingField) Inc() ratingField {
	if f.value < 5 {
		f.value++
	}
	return f
}

func (f ratingField) Dec() ratingField {
	if f.value > 1 {
		f.value--
	}
	return f
}

func (f ratingField) View(focused bool) string {
	if f.value == 0 {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		if focused {
			return style.Render("‹ not rated ›")
		}
		return style.Render("  not rated")
	}

	stars := strings.Repeat("★", f.value) + strings.Repeat("☆", 5-f.value)
	text := fmt.Sprintf("%s %d/5", stars, f.value)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	if focused {
		arrows := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		return arrows.Render("‹ ") + style.Render(text) + arrows.Render(" ›")
	}
	return "  " + style.Render(text)
}
