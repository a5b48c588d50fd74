package parser

import (
	"regexp"
	"strings"
)

// ParsedPatient represents a patient parsed from a quick-add line
type ParsedPatient struct {
	Name    string
	Age     string
	Contact string
	Errors  []string
}

var (
	ageRegex     = regexp.MustCompile(`(?i)\bage:(\S*)`)
	contactRegex = regexp.MustCompile(`(?i)\bcontact:(\S*)`)
	spaceRegex   = regexp.MustCompile(`\s+`)
)

// ParsePatient extracts patient fields from a quick-add line
// Syntax: "Jane Doe age:34 contact:jane@example.com"
// Whatever is left after removing the tokens becomes the name.
func ParsePatient(input string) ParsedPatient {
	result := ParsedPatient{
		Errors: []string{},
	}

	// Extract age (age:34)
	if matches := ageRegex.FindStringSubmatch(input); len(matches) > 1 {
		if _, err := ParseAge(matches[1]); err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Age = matches[1]
		}
		// Remove from name
		input = ageRegex.ReplaceAllString(input, "")
	}

	// Extract contact (contact:anything-without-spaces)
	if matches := contactRegex.FindStringSubmatch(input); len(matches) > 1 {
		if matches[1] == "" {
			result.Errors = append(result.Errors, "contact is empty")
		}
		result.Contact = matches[1]
		// Remove from name
		input = contactRegex.ReplaceAllString(input, "")
	}

	// Clean up name
	result.Name = strings.TrimSpace(spaceRegex.ReplaceAllString(input, " "))

	return result
}
