package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/models"
	"github.com/balkashynov/therapylog/internal/parser"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [patient-id]",
	Short: "Schedule an online session",
	Long: `Schedule a future online session for a patient. Missing flags are prompted for.

Date formats:
  yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, "in 3 days", "2 weeks"

Examples:
  therapylog schedule 3 --date tomorrow --time 10:00 --platform zoom
  therapylog schedule 3 --date 24/10/2026 --time "5pm" --platform meet`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runSchedule),
}

func runSchedule(cmd *cobra.Command, args []string, a *app) error {
	patientID, err := parsePatientID(a, args[0])
	if err != nil {
		return err
	}

	dateText, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	platform, _ := cmd.Flags().GetString("platform")

	if dateText == "" {
		if dateText, err = promptText("Date:", "yyyy-mm-dd, dd/mm/yyyy, today, tomorrow or \"in 3 days\"", true); err != nil {
			return err
		}
	}
	day, err := parser.ParseScheduleDate(dateText, a.controller.Now())
	if err != nil {
		return fmt.Errorf("error parsing date: %w", err)
	}

	if clock == "" {
		if clock, err = promptText("Time (HH:MM):", "Stored as typed", true); err != nil {
			return err
		}
	}
	if platform == "" {
		if platform, err = promptSelect("Platform:", stringsOf(models.Platforms)); err != nil {
			return err
		}
	}

	session, err := a.controller.ScheduleSession(clinic.ScheduleInput{
		PatientID: patientID,
		Date:      day,
		Time:      clock,
		Platform:  platform,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Session scheduled successfully! %s (%s)\n", session.SessionDate, session.Notes)
	return nil
}

func init() {
	scheduleCmd.Flags().StringP("date", "d", "", "Session date")
	scheduleCmd.Flags().StringP("time", "t", "", "Session time, e.g. 10:00")
	scheduleCmd.Flags().StringP("platform", "p", "", "Platform: zoom, meet, teams")
}
