package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jgoulah/punchclock/internal/printer"
	"github.com/jgoulah/punchclock/internal/timeclock"
	"github.com/spf13/cobra"
)

var (
	reportNow     string
	reportStore   bool
	reportNoRates bool
)

var reportCmd = &cobra.Command{
	Use:   "report <logfile>",
	Short: "Generate a work-hours report from a timeclock log",
	Long: `Reads a timeclock log of alternating check-in/check-out lines and prints
one summary per calendar day with per-project hours, followed by the
year-to-date total.

A trailing check-in with no check-out is reported as still running as of
the current time (override with --now for reproducible output).`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportNow, "now", "", "Reference time for a dangling check-in (YYYY/MM/DD HH:MM:SS, default: wall clock)")
	reportCmd.Flags().BoolVar(&reportStore, "store", false, "Also archive each finished day in the database")
	reportCmd.Flags().BoolVar(&reportNoRates, "no-rates", false, "Hide billing amounts even when rates are configured")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	logPath := args[0]

	// Confirm the log is readable before any parsing starts
	f, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	// Resolve the reference time for a dangling check-in
	clock := time.Now
	if reportNow != "" {
		ref, err := time.ParseInLocation("2006/01/02 15:04:05", reportNow, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --now: %w", err)
		}
		clock = func() time.Time { return ref }
	}

	// Load config for billing rates
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var console timeclock.Printer
	if reportNoRates {
		console = printer.NewConsole(cmd.OutOrStdout())
	} else {
		console = printer.NewConsoleWithRates(cmd.OutOrStdout(), cfg)
	}

	out := console
	if reportStore {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
		out = printer.Multi{console, printer.NewStore(db)}
	}

	p := timeclock.NewWithClock(f, clock)
	if err := timeclock.Generate(p, out); err != nil {
		return err
	}

	if reportStore {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Day records archived")
	}
	return nil
}
