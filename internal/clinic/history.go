package clinic

import (
	"fmt"
	"strings"

	"github.com/balkashynov/therapylog/internal/models"
	"github.com/balkashynov/therapylog/internal/parser"
)

const notAvailable = "N/A"

// FormatSession renders one history entry
func FormatSession(s models.Session) string {
	platform := notAvailable
	if s.Platform != nil {
		platform = string(*s.Platform)
	}

	cost := notAvailable
	if s.Cost.Valid {
		cost = parser.FormatCost(s.Cost.Decimal)
	}

	payment := notAvailable
	if s.PaymentStatus != nil {
		payment = string(*s.PaymentStatus)
	}

	rating := notAvailable
	if s.Rating != nil {
		rating = fmt.Sprintf("%d/5", *s.Rating)
	}

	feedback := notAvailable
	if s.Feedback != nil {
		feedback = *s.Feedback
	}

	return fmt.Sprintf("Date: %s, Type: %s, Platform: %s, Duration: %d minutes, Cost: %s, Payment: %s, Rating: %s\nFeedback: %s\nNotes: %s\n",
		s.SessionDate, s.SessionType, platform, s.Duration, cost, payment, rating, feedback, s.Notes)
}

// FormatHistory renders every session, separated by a blank line
func FormatHistory(sessions []models.Session) string {
	entries := make([]string, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, FormatSession(s))
	}
	return strings.Join(entries, "\n")
}
