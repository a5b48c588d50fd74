package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxCost is the largest accepted session fee
var MaxCost = decimal.NewFromInt(1_000_000)

// costRegex allows plain amounts with at most two decimals, so the value
// survives the REAL column unchanged
var costRegex = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// ParseCost parses a session fee such as "50", "50.5" or "$50.50"
func ParseCost(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "$")
	input = strings.ReplaceAll(input, ",", "")
	if input == "" {
		return decimal.Zero, fmt.Errorf("cost is required")
	}

	if !costRegex.MatchString(input) {
		return decimal.Zero, fmt.Errorf("invalid cost '%s'. Use a number like 50 or 50.50", input)
	}
	cost, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid cost '%s'. Use a number like 50 or 50.50", input)
	}
	if cost.IsNegative() {
		return decimal.Zero, fmt.Errorf("cost cannot be negative")
	}
	if cost.GreaterThan(MaxCost) {
		return decimal.Zero, fmt.Errorf("cost cannot exceed %s", FormatCost(MaxCost))
	}
	return cost, nil
}

// FormatCost renders an amount as dollars with two decimals
func FormatCost(cost decimal.Decimal) string {
	return "$" + cost.StringFixed(2)
}

// ParseAge parses a patient age in whole years
func ParseAge(input string) (int, error) {
	input = strings.TrimSpace(input)
	age, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid age '%s'. Use a whole number", input)
	}
	if age < 0 || age > 150 {
		return 0, fmt.Errorf("age must be between 0 and 150")
	}
	return age, nil
}

// ParseRating parses a 1-5 session rating. Empty input means no rating.
func ParseRating(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	rating, err := strconv.Atoi(input)
	if err != nil || rating < 1 || rating > 5 {
		return 0, fmt.Errorf("invalid rating '%s'. Use 1 to 5", input)
	}
	return rating, nil
}
