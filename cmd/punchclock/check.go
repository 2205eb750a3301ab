package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/punchclock/internal/timeclock"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <logfile>",
	Short: "Validate a timeclock log without generating a report",
	Long: `Parses the log and reports the number of check-in/check-out pairs found,
or the first line that violates the alternating structure.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	p := timeclock.New(f)
	pairs := 0
	dangling := false
	for {
		entry, err := p.Next()
		if err != nil {
			return err
		}
		if entry == nil {
			break
		}
		pairs++
		if entry.Dangling {
			dangling = true
		}
	}

	fmt.Printf("✓ %s: %d pairs\n", args[0], pairs)
	if dangling {
		fmt.Println("⚠ Log ends with a check-in that has no check-out")
	}
	return nil
}
