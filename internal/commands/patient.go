package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/parser"
	"github.com/balkashynov/therapylog/internal/tui"
)

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patients",
}

var patientAddCmd = &cobra.Command{
	Use:   "add [quick text]",
	Short: "Add a new patient",
	Long: `Add a new patient. Fields missing from the flags and quick text are prompted for.

Quick text syntax:
  age:34          - Age in years
  contact:value   - Phone or email (no spaces)
  anything else   - The patient's name

Examples:
  therapylog patient add "Jane Doe age:34 contact:jane@example.com"
  therapylog patient add --name "Jane Doe" --age 34 --contact 555-0101
  therapylog patient add          # prompts for every field`,
	Args: cobra.ArbitraryArgs,
	RunE: withApp(runPatientAdd),
}

var patientsCmd = &cobra.Command{
	Use:     "patients",
	Aliases: []string{"ls"},
	Short:   "List patients",
	Long:    "Browse patients with their session and billing totals. Use --no-ui for a plain table.",
	Args:    cobra.NoArgs,
	RunE:    withApp(runPatients),
}

func runPatientAdd(cmd *cobra.Command, args []string, a *app) error {
	in := clinic.PatientInput{}

	// Quick text first, flags take precedence
	if len(args) > 0 {
		parsed := parser.ParsePatient(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
		}
		in.Name = parsed.Name
		in.Age = parsed.Age
		in.Contact = parsed.Contact
	}
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		in.Name = name
	}
	if age, _ := cmd.Flags().GetString("age"); age != "" {
		in.Age = age
	}
	if contact, _ := cmd.Flags().GetString("contact"); contact != "" {
		in.Contact = contact
	}

	var err error
	if strings.TrimSpace(in.Name) == "" {
		if in.Name, err = promptText("Name:", "The patient's full name", true); err != nil {
			return err
		}
	}
	if strings.TrimSpace(in.Age) == "" {
		if in.Age, err = promptText("Age:", "Age in years (0-150)", true); err != nil {
			return err
		}
	}
	if strings.TrimSpace(in.Contact) == "" {
		if in.Contact, err = promptText("Contact:", "Phone number or email", true); err != nil {
			return err
		}
	}

	patient, err := a.controller.AddPatient(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Patient added successfully! #%d: %s\n", patient.ID, patient.Name)
	if patient.Age != nil {
		fmt.Fprintf(out, "  Age: %d\n", *patient.Age)
	}
	fmt.Fprintf(out, "  Contact: %s\n", patient.Contact)
	return nil
}

// patientRow is the JSON shape of one patients entry
type patientRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Contact     string `json:"contact"`
	Sessions    int    `json:"sessions"`
	Upcoming    int    `json:"upcoming"`
	Outstanding string `json:"outstanding"`
}

func runPatients(cmd *cobra.Command, args []string, a *app) error {
	patients, err := a.store.ListPatients()
	if err != nil {
		return err
	}
	billing, err := a.controller.BillingSummary()
	if err != nil {
		return err
	}

	noUI, _ := cmd.Flags().GetBool("no-ui")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if !noUI && !jsonOutput {
		return tui.RunPatientListTUI(patients, billing)
	}

	byPatient := make(map[uint]clinic.PatientBilling, len(billing))
	for _, b := range billing {
		byPatient[b.PatientID] = b
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		rows := make([]patientRow, 0, len(patients))
		for _, p := range patients {
			b := byPatient[p.ID]
			rows = append(rows, patientRow{
				ID:          p.ID,
				Name:        p.Name,
				Age:         p.Age,
				Contact:     p.Contact,
				Sessions:    b.Held,
				Upcoming:    b.Scheduled,
				Outstanding: b.Outstanding().StringFixed(2),
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(patients) == 0 {
		fmt.Fprintln(out, "No patients found. Use 'therapylog patient add' to add your first patient.")
		return nil
	}

	fmt.Fprintf(out, "%-4s %-30s %-4s %-30s %-8s %s\n", "ID", "NAME", "AGE", "CONTACT", "SESSIONS", "OWED")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, p := range patients {
		age := "-"
		if p.Age != nil {
			age = fmt.Sprint(*p.Age)
		}

		name := truncate(p.Name, 28)
		contact := truncate(p.Contact, 28)

		b := byPatient[p.ID]
		fmt.Fprintf(out, "%-4d %-30s %-4s %-30s %-8d %s\n",
			p.ID,
			name,
			age,
			contact,
			b.Held,
			parser.FormatCost(b.Outstanding()))
	}
	return nil
}

func init() {
	patientAddCmd.Flags().StringP("name", "n", "", "Patient name")
	patientAddCmd.Flags().StringP("age", "a", "", "Age in years")
	patientAddCmd.Flags().StringP("contact", "c", "", "Phone or email")
	patientCmd.AddCommand(patientAddCmd)

	patientsCmd.Flags().Bool("no-ui", false, "Simple text output")
	patientsCmd.Flags().Bool("json", false, "JSON output")
}

// truncate shortens s to width runes, ending with "..." when cut
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
