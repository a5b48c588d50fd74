package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
	"github.com/balkashynov/therapylog/internal/parser"
	"github.com/balkashynov/therapylog/internal/tui"
)

var sessionCmd = &cobra.Command{
	Use:   "session [patient-id]",
	Short: "Run and record a therapy session",
	Long: `Start a session for a patient and show the live clock. When you stop the clock the
session outcome is taken from the flags, and anything missing is prompted for.

Examples:
  therapylog session 3
  therapylog session 3 --type online --platform zoom --cost 60 --payment paid
  therapylog session 3 --no-ui    # no clock, press Enter to end`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runSession),
}

func runSession(cmd *cobra.Command, args []string, a *app) error {
	patientID, err := parsePatientID(a, args[0])
	if err != nil {
		return err
	}
	patient, err := a.store.GetPatient(patientID)
	if err != nil {
		return err
	}

	state, err := a.controller.StartSession(patientID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	noUI, _ := cmd.Flags().GetBool("no-ui")
	if noUI {
		fmt.Fprintf(out, "⏱️  Session started for %s at %s\n", patient.Name, state.StartedAt.Format("15:04:05"))
		if _, err := promptText("Press Enter to end the session", "", false); err != nil {
			return err
		}
	} else {
		stopping, err := tui.RunTimerTUI(state, *patient, a.controller.Now)
		if err != nil {
			return err
		}
		if !stopping {
			fmt.Fprintln(out, "Left without recording; the session was discarded.")
			return nil
		}
	}

	fmt.Fprintf(out, "Elapsed: %s\n", formatDuration(a.controller.State().Elapsed(a.controller.Now())))

	outcome, err := outcomeFromFlags(cmd)
	if err != nil {
		return err
	}
	for {
		if err := completeOutcome(&outcome); err != nil {
			return err
		}

		session, err := a.controller.EndSession(outcome)
		if clinic.IsValidation(err) {
			// The session keeps running; ask again from scratch
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			outcome = clinic.SessionOutcome{Rating: -1}
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "⏹️  Session ended. Duration: %d minutes.\n", session.Duration)
		return nil
	}
}

// outcomeFromFlags reads the outcome flags. Rating -1 means not given.
func outcomeFromFlags(cmd *cobra.Command) (clinic.SessionOutcome, error) {
	var out clinic.SessionOutcome
	out.Notes, _ = cmd.Flags().GetString("notes")
	out.SessionType, _ = cmd.Flags().GetString("type")
	out.Platform, _ = cmd.Flags().GetString("platform")
	out.Cost, _ = cmd.Flags().GetString("cost")
	out.PaymentStatus, _ = cmd.Flags().GetString("payment")
	out.Feedback, _ = cmd.Flags().GetString("feedback")

	out.Rating = -1
	if cmd.Flags().Changed("rating") {
		text, _ := cmd.Flags().GetString("rating")
		rating, err := parser.ParseRating(text)
		if err != nil {
			return out, err
		}
		out.Rating = rating
	}
	return out, nil
}

// completeOutcome prompts for every outcome field that is still missing
func completeOutcome(out *clinic.SessionOutcome) error {
	var err error

	if out.SessionType == "" {
		if out.SessionType, err = promptSelect("Session type:", stringsOf(models.SessionTypes)); err != nil {
			return err
		}
	}
	if out.Platform == "" {
		if st, parseErr := models.ParseSessionType(out.SessionType); parseErr == nil && st == models.SessionOnline {
			if out.Platform, err = promptSelect("Platform:", stringsOf(models.Platforms)); err != nil {
				return err
			}
		}
	}
	if out.Cost == "" {
		if out.Cost, err = promptText("Cost ($):", "e.g. 50 or 50.50", true); err != nil {
			return err
		}
	}
	if out.PaymentStatus == "" {
		if out.PaymentStatus, err = promptSelect("Payment status:", stringsOf(models.PaymentStatuses)); err != nil {
			return err
		}
	}
	if out.Notes == "" {
		if out.Notes, err = promptMultiline("Session notes:", true); err != nil {
			return err
		}
	}
	if out.Rating < 0 {
		if out.Rating, err = promptRating(); err != nil {
			return err
		}
		if out.Feedback == "" {
			if out.Feedback, err = promptText("Feedback (optional):", "", false); err != nil {
				return err
			}
		}
	}
	return nil
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}

func init() {
	sessionCmd.Flags().Bool("no-ui", false, "Run without the live clock")
	sessionCmd.Flags().String("notes", "", "Session notes")
	sessionCmd.Flags().StringP("type", "t", "", "Session type: in-person or online")
	sessionCmd.Flags().StringP("platform", "p", "", "Platform for online sessions: zoom, meet, teams")
	sessionCmd.Flags().String("cost", "", "Session cost, e.g. 50.50")
	sessionCmd.Flags().String("payment", "", "Payment status: paid, pending, overdue")
	sessionCmd.Flags().StringP("rating", "r", "", "Rating 1-5 (empty for not rated)")
	sessionCmd.Flags().String("feedback", "", "Patient feedback")
}
