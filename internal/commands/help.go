package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for therapylog",
	Long:  `Display detailed help for all therapylog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			target, _, err := rootCmd.Find(args)
			if err == nil && target != rootCmd {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd)
	},
}

func showCustomHelp(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), `
 _   _                               _
| |_| |__   ___ _ __ __ _ _ __  _   _| | ___   __ _
| __| '_ \ / _ \ '__/ _' | '_ \| | | | |/ _ \ / _' |
| |_| | | |  __/ | | (_| | |_) | |_| | | (_) | (_| |
 \__|_| |_|\___|_|  \__,_| .__/ \__, |_|\___/ \__, |
                         |_|    |___/         |___/

therapylog - Therapy Session Logger

COMMANDS:

  (no command), ui        Open the full-screen form
    Keys:
      tab/shift+tab   Move between fields
      ←/→             Change a choice, rating or date
      pgup/pgdn       Previous/next month in the date picker
      enter           Press the focused button
      esc             Quit (blocked while a session runs)

  patient add [text]      Add a patient
    -n, --name            Patient name
    -a, --age             Age in years
    -c, --contact         Phone or email

    Quick syntax:
      therapylog patient add "Jane Doe age:34 contact:jane@example.com"

  patients                Browse patients with billing totals
    --no-ui               Simple text output
    --json                JSON output

  session <patient-id>    Time a session, then record its outcome
    --no-ui               No live clock, press Enter to end
    -t, --type            in-person | online
    -p, --platform        zoom | meet | teams (online only)
    --cost                Session cost
    --payment             paid | pending | overdue
    --notes               Session notes
    -r, --rating          1-5, empty for not rated
    --feedback            Patient feedback

  schedule <patient-id>   Schedule an online session
    -d, --date            yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, "in 3 days"
    -t, --time            Time, stored as typed
    -p, --platform        zoom | meet | teams

  history <patient-id>    Show a patient's sessions
    --json                JSON output

  billing                 Paid, pending and overdue totals per patient
  version                 Print version information
  help [command]          Show this help

GLOBAL FLAGS:
  --db <path>             Database file (env THERAPYLOG_DB)

ENVIRONMENT (also read from .env):
  THERAPYLOG_DB           Database file (default ~/.therapylog/therapy_sessions.db)
  THERAPYLOG_LOG          Log file (default ~/.therapylog/therapylog.log)
  THERAPYLOG_LOG_LEVEL    debug | info | warn | error

`)
}
