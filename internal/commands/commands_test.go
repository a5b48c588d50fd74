package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag back to its default so runs don't leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("THERAPYLOG_DB", filepath.Join(dir, "env.db"))
	t.Setenv("THERAPYLOG_LOG", filepath.Join(dir, "therapylog.log"))
	t.Setenv("THERAPYLOG_LOG_LEVEL", "debug")
	return filepath.Join(dir, "therapy.db")
}

func run(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	dbPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", dbFile}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dbFile string, args ...string) string {
	t.Helper()
	out, err := run(t, dbFile, args...)
	if err != nil {
		t.Fatalf("therapylog %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestPatientAdd(t *testing.T) {
	t.Run("quick text", func(t *testing.T) {
		dbFile := setupCLI(t)
		out := mustRun(t, dbFile, "patient", "add", "Jane Doe age:34 contact:jane@example.com")
		if !strings.Contains(out, "#1: Jane Doe") || !strings.Contains(out, "Age: 34") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("flags override quick text", func(t *testing.T) {
		dbFile := setupCLI(t)
		out := mustRun(t, dbFile, "patient", "add", "Jane age:34 contact:old@example.com", "--contact", "555-0101")
		if !strings.Contains(out, "Contact: 555-0101") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("invalid age is a validation error", func(t *testing.T) {
		dbFile := setupCLI(t)
		_, err := run(t, dbFile, "patient", "add", "--name", "Bob", "--age", "abc", "--contact", "bob@example.com")
		if err == nil {
			t.Fatalf("expected an error for a non-numeric age")
		}
	})
}

func TestPatientsTable(t *testing.T) {
	dbFile := setupCLI(t)

	out := mustRun(t, dbFile, "patients", "--no-ui")
	if !strings.Contains(out, "No patients found") {
		t.Fatalf("empty table output:\n%s", out)
	}

	mustRun(t, dbFile, "patient", "add", "--name", "Jane Doe", "--age", "34", "--contact", "jane@example.com")
	mustRun(t, dbFile, "patient", "add", "--name", "Bob Stone", "--age", "51", "--contact", "555-0100")

	out = mustRun(t, dbFile, "patients", "--no-ui")
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "Bob Stone") {
		t.Fatalf("table missing patients:\n%s", out)
	}

	out = mustRun(t, dbFile, "patients", "--json")
	var rows []patientRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(rows) != 2 || rows[1].Name != "Bob Stone" || rows[1].Outstanding != "0.00" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestScheduleHistoryAndBilling(t *testing.T) {
	dbFile := setupCLI(t)
	mustRun(t, dbFile, "patient", "add", "--name", "Jane Doe", "--age", "34", "--contact", "jane@example.com")

	out := mustRun(t, dbFile, "history", "1")
	if !strings.Contains(out, "No sessions found for the selected patient.") {
		t.Fatalf("empty history output:\n%s", out)
	}

	out = mustRun(t, dbFile, "schedule", "1", "--date", "2026-10-24", "--time", "10:00", "--platform", "meet")
	if !strings.Contains(out, "2026-10-24 10:00") || !strings.Contains(out, "Scheduled on Google Meet") {
		t.Fatalf("schedule output:\n%s", out)
	}

	out = mustRun(t, dbFile, "history", "1")
	for _, want := range []string{"Date: 2026-10-24 10:00", "Platform: Google Meet", "Cost: N/A", "Payment: N/A", "Rating: N/A"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, dbFile, "history", "1", "--json")
	var rows []sessionJSON
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(rows) != 1 || !rows[0].Scheduled || rows[0].Cost != nil {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	out = mustRun(t, dbFile, "billing")
	if !strings.Contains(out, "1: Jane Doe") || !strings.Contains(out, "Total") {
		t.Fatalf("billing output:\n%s", out)
	}
}

func TestPatientIDErrors(t *testing.T) {
	dbFile := setupCLI(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a number", []string{"history", "abc"}, "invalid patient ID 'abc'"},
		{"zero", []string{"schedule", "0", "--date", "today", "--time", "9:00", "--platform", "zoom"}, "invalid patient ID '0'"},
		{"unknown patient", []string{"session", "42"}, "patient #42 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, dbFile, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScheduleRejectsBadInput(t *testing.T) {
	dbFile := setupCLI(t)
	mustRun(t, dbFile, "patient", "add", "--name", "Jane Doe", "--age", "34", "--contact", "jane@example.com")

	if _, err := run(t, dbFile, "schedule", "1", "--date", "someday", "--time", "9:00", "--platform", "zoom"); err == nil {
		t.Fatalf("expected a date parsing error")
	}
	if _, err := run(t, dbFile, "schedule", "1", "--date", "today", "--time", "9:00", "--platform", "skype"); err == nil {
		t.Fatalf("expected an unknown platform error")
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-10-17")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	dbFile := setupCLI(t)
	out := mustRun(t, dbFile, "version")
	if !strings.Contains(out, "therapylog 1.2.3 (commit abc123") {
		t.Fatalf("version output: %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{30, "30s"},
		{300, "5m"},
		{5400, "1.5h"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(time.Duration(tt.seconds) * time.Second); got != tt.want {
				t.Fatalf("formatDuration = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Jane Doe", 28, "Jane Doe"},
		{"abcdefghij", 8, "abcde..."},
		{"Zoë Ångström", 8, "Zoë Å..."},
		{"日本語の名前です", 5, "日本..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := truncate(tt.in, tt.width)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestTablesKeepMultibyteNamesValid(t *testing.T) {
	dbFile := setupCLI(t)
	name := "Zoë Ångström-Łukasiewicz Østergård"
	mustRun(t, dbFile, "patient", "add", "--name", name, "--age", "40", "--contact", "zoë@example.com")
	mustRun(t, dbFile, "schedule", "1", "--date", "2026-10-24", "--time", "10:00", "--platform", "zoom")

	for _, args := range [][]string{{"patients", "--no-ui"}, {"billing"}} {
		out := mustRun(t, dbFile, args...)
		if !utf8.ValidString(out) {
			t.Fatalf("%v output is not valid UTF-8:\n%q", args, out)
		}
		if !strings.Contains(out, "Zoë Ångström") {
			t.Fatalf("%v output lost the name:\n%s", args, out)
		}
	}
}
