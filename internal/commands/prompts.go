package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// promptText asks for a text value; required answers may not be blank
func promptText(message, help string, required bool) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
	}

	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(func(val interface{}) error {
			if str, _ := val.(string); strings.TrimSpace(str) == "" {
				return fmt.Errorf("this field is required")
			}
			return nil
		}))
	}

	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// promptMultiline asks for free text spanning several lines
func promptMultiline(message string, required bool) (string, error) {
	var answer string
	prompt := &survey.Multiline{
		Message: message,
	}

	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// promptSelect asks the user to pick one option
func promptSelect(message string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// promptRating asks for a 1-5 rating, with "skip" meaning not rated
func promptRating() (int, error) {
	options := []string{"skip", "1", "2", "3", "4", "5"}
	selected, err := promptSelect("Rating (1-5):", options)
	if err != nil {
		return 0, err
	}
	if selected == "skip" {
		return 0, nil
	}
	return int(selected[0] - '0'), nil
}
