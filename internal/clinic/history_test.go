package clinic

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/therapylog/internal/models"
)

func TestFormatSession(t *testing.T) {
	paid := models.PaymentPaid
	rating := 4
	feedback := "Good progress"
	zoom := models.PlatformZoom

	tests := []struct {
		name    string
		session models.Session
		want    string
	}{
		{
			name: "held session",
			session: models.Session{
				SessionDate:   "2026-10-17 10:50:00",
				Notes:         "CBT worksheet",
				Duration:      50,
				SessionType:   models.SessionInPerson,
				Cost:          decimal.NewNullDecimal(decimal.RequireFromString("50.5")),
				PaymentStatus: &paid,
				Rating:        &rating,
				Feedback:      &feedback,
			},
			want: "Date: 2026-10-17 10:50:00, Type: In-person, Platform: N/A, Duration: 50 minutes, Cost: $50.50, Payment: Paid, Rating: 4/5\n" +
				"Feedback: Good progress\nNotes: CBT worksheet\n",
		},
		{
			name: "scheduled session has no outcome",
			session: models.Session{
				SessionDate: "2026-10-20 14:30",
				Notes:       "Scheduled on Zoom",
				SessionType: models.SessionOnline,
				Platform:    &zoom,
			},
			want: "Date: 2026-10-20 14:30, Type: Online, Platform: Zoom, Duration: 0 minutes, Cost: N/A, Payment: N/A, Rating: N/A\n" +
				"Feedback: N/A\nNotes: Scheduled on Zoom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSession(tt.session); got != tt.want {
				t.Errorf("FormatSession() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormatHistorySeparatesEntries(t *testing.T) {
	sessions := []models.Session{
		{SessionDate: "a", SessionType: models.SessionOnline},
		{SessionDate: "b", SessionType: models.SessionOnline},
	}

	got := FormatHistory(sessions)
	if strings.Count(got, "Date: ") != 2 {
		t.Fatalf("expected two entries:\n%s", got)
	}
	if !strings.Contains(got, "\n\nDate: b") {
		t.Fatalf("expected a blank line between entries:\n%q", got)
	}
}
