package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dmyRegex      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoRegex      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	relativeRegex = regexp.MustCompile(`^(?:in\s+)?(\d+)\s+(day|days|week|weeks)$`)
)

// ParseScheduleDate parses the calendar day of a scheduled session.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-10-20")
// - dd/mm/yyyy (e.g., "20/10/2026")
// - today, tomorrow
// - X days / X weeks, optionally prefixed with "in" (e.g., "in 3 days")
//
// The result is midnight of that day in the location of now.
func ParseScheduleDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if matches := isoRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDate(matches[1], matches[2], matches[3], now.Location())
	}

	if matches := dmyRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDate(matches[3], matches[2], matches[1], now.Location())
	}

	if matches := relativeRegex.FindStringSubmatch(input); len(matches) == 3 {
		amount, err := strconv.Atoi(matches[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number")
		}
		switch matches[2] {
		case "day", "days":
			if amount > 365 { // Max 1 year in days
				return time.Time{}, fmt.Errorf("days must be between 0 and 365")
			}
			return today.AddDate(0, 0, amount), nil
		default:
			if amount > 52 { // Max 1 year in weeks
				return time.Time{}, fmt.Errorf("weeks must be between 0 and 52")
			}
			return today.AddDate(0, 0, amount*7), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days or X weeks")
}

// buildDate validates the parts and rejects impossible dates like 31/02
func buildDate(yearStr, monthStr, dayStr string, loc *time.Location) (time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}
