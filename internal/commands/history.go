package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
)

var historyCmd = &cobra.Command{
	Use:   "history [patient-id]",
	Short: "Show a patient's session history",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runHistory),
}

// sessionJSON is the JSON shape of one history entry
type sessionJSON struct {
	ID            uint                  `json:"id"`
	PatientID     uint                  `json:"patient_id"`
	SessionDate   string                `json:"session_date"`
	Notes         string                `json:"notes"`
	Duration      int                   `json:"duration_minutes"`
	SessionType   models.SessionType    `json:"session_type"`
	Platform      *models.Platform      `json:"platform"`
	Cost          *string               `json:"cost"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
	Rating        *int                  `json:"rating"`
	Feedback      *string               `json:"feedback"`
	Scheduled     bool                  `json:"scheduled"`
}

func runHistory(cmd *cobra.Command, args []string, a *app) error {
	patientID, err := parsePatientID(a, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sessions, err := a.controller.Sessions(patientID)
	if errors.Is(err, clinic.ErrNoSessions) {
		fmt.Fprintln(out, "No sessions found for the selected patient.")
		return nil
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		rows := make([]sessionJSON, 0, len(sessions))
		for _, s := range sessions {
			row := sessionJSON{
				ID:            s.ID,
				PatientID:     s.PatientID,
				SessionDate:   s.SessionDate,
				Notes:         s.Notes,
				Duration:      s.Duration,
				SessionType:   s.SessionType,
				Platform:      s.Platform,
				PaymentStatus: s.PaymentStatus,
				Rating:        s.Rating,
				Feedback:      s.Feedback,
				Scheduled:     s.IsScheduled(),
			}
			if s.Cost.Valid {
				cost := s.Cost.Decimal.StringFixed(2)
				row.Cost = &cost
			}
			rows = append(rows, row)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprint(out, clinic.FormatHistory(sessions))
	return nil
}

func init() {
	historyCmd.Flags().Bool("json", false, "JSON output")
}
