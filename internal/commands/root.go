package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/therapylog/internal/clinic"
	"github.com/balkashynov/therapylog/internal/config"
	"github.com/balkashynov/therapylog/internal/db"
	"github.com/balkashynov/therapylog/internal/logging"
	"github.com/balkashynov/therapylog/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// dbPath overrides the configured database file when set
var dbPath string

var rootCmd = &cobra.Command{
	Use:   "therapylog",
	Short: "A terminal therapy session logger",
	Long: `therapylog keeps patient records, times therapy sessions, and schedules
upcoming ones, all stored in a local SQLite file.

Run without arguments to open the full-screen form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          withApp(runForm),
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the full-screen form",
	Args:  cobra.NoArgs,
	RunE:  withApp(runForm),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "therapylog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// app holds what a command needs to talk to the database
type app struct {
	store      *db.Store
	controller *clinic.Controller
	logger     *slog.Logger
	logCloser  io.Closer
}

// openApp loads the config and opens the database and log file
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger, logCloser := logging.New(cfg.LogPath, cfg.LogLevel)

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database failed", "path", cfg.DBPath, "error", err)
		logCloser.Close()
		return nil, err
	}
	logger.Debug("database opened", "path", cfg.DBPath)

	return &app{
		store:      store,
		controller: clinic.New(store, clinic.WithLogger(logger)),
		logger:     logger,
		logCloser:  logCloser,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("close database failed", "error", err)
	}
	a.logCloser.Close()
}

// withApp wraps a command function so it runs against an open database
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}

func runForm(cmd *cobra.Command, args []string, a *app) error {
	return tui.RunFormTUI(a.controller)
}

// parsePatientID reads a patient id argument and checks the patient exists
func parsePatientID(a *app, arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid patient ID '%s'", arg)
	}
	if _, err := a.store.GetPatient(uint(id)); err != nil {
		return 0, err
	}
	return uint(id), nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (default ~/.therapylog/therapy_sessions.db)")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(patientCmd)
	rootCmd.AddCommand(patientsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
