package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/parser"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Show what each patient has paid and owes",
	Long: `Show a billing summary grouped by patient.

Example output:
  Patient            Held    Min        Paid     Pending     Overdue        Owed  Upcoming
  1: Jane Doe           3    150     $100.00      $50.00       $0.00      $50.00         1
  Total                 3    150     $100.00      $50.00       $0.00      $50.00         1`,
	Args: cobra.NoArgs,
	RunE: withApp(runBilling),
}

func runBilling(cmd *cobra.Command, args []string, a *app) error {
	summary, err := a.controller.BillingSummary()
	if err != nil {
		return fmt.Errorf("failed to build billing summary: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(summary) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	displayBilling(cmd, summary)
	return nil
}

// displayBilling outputs the formatted billing table
func displayBilling(cmd *cobra.Command, summary []clinic.PatientBilling) {
	out := cmd.OutOrStdout()

	// Calculate the patient column width
	nameWidth := 16
	for _, b := range summary {
		if n := utf8.RuneCountInString(patientKey(b)); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > 40 {
		nameWidth = 40 // Cap at 40 chars
	}
	moneyWidth := 10

	// Print header
	fmt.Fprintf(out, "%-*s  %5s  %5s  %*s  %*s  %*s  %*s  %8s\n",
		nameWidth, "Patient", "Held", "Min",
		moneyWidth, "Paid", moneyWidth, "Pending", moneyWidth, "Overdue", moneyWidth, "Owed", "Upcoming")
	separator := strings.Repeat("-", nameWidth+2+5+2+5+4*(moneyWidth+2)+2+8)
	fmt.Fprintln(out, separator)

	var total clinic.PatientBilling
	total.Paid, total.Pending, total.Overdue = decimal.Zero, decimal.Zero, decimal.Zero

	for _, b := range summary {
		key := truncate(patientKey(b), nameWidth)
		printBillingRow(cmd, key, nameWidth, moneyWidth, b)

		total.Held += b.Held
		total.Scheduled += b.Scheduled
		total.Minutes += b.Minutes
		total.Paid = total.Paid.Add(b.Paid)
		total.Pending = total.Pending.Add(b.Pending)
		total.Overdue = total.Overdue.Add(b.Overdue)
	}

	// Print total row
	fmt.Fprintln(out, separator)
	printBillingRow(cmd, "Total", nameWidth, moneyWidth, total)
}

func printBillingRow(cmd *cobra.Command, label string, nameWidth, moneyWidth int, b clinic.PatientBilling) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %5d  %5d  %*s  %*s  %*s  %*s  %8d\n",
		nameWidth, label, b.Held, b.Minutes,
		moneyWidth, parser.FormatCost(b.Paid),
		moneyWidth, parser.FormatCost(b.Pending),
		moneyWidth, parser.FormatCost(b.Overdue),
		moneyWidth, parser.FormatCost(b.Outstanding()),
		b.Scheduled)
}

// patientKey creates a display key for the patient
func patientKey(b clinic.PatientBilling) string {
	return fmt.Sprintf("%d: %s", b.PatientID, b.Name)
}
