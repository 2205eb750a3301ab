package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived day records",
	Long:  `Displays all day records archived in the database, oldest first.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Load config for billing rates
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	days, err := db.ListDays()
	if err != nil {
		return fmt.Errorf("listing day records: %w", err)
	}

	if len(days) == 0 {
		fmt.Println("No day records found")
		return nil
	}

	fmt.Println("\nArchived Day Records:")
	fmt.Println("----------------------------------------")
	fmt.Printf("%-12s  %10s  %10s\n", "Date", "Hours", "Billable")
	fmt.Println("----------------------------------------")

	var totalHours, totalBillable float64
	for _, day := range days {
		billable := 0.0
		for project, hours := range day.ProjectHours {
			billable += hours * cfg.GetRate(project)
		}

		fmt.Printf("%-12s  %9.2fh  $%9.2f\n", day.Date.Format("2006-01-02"), day.TotalHours, billable)
		totalHours += day.TotalHours
		totalBillable += billable
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("Total: %.2f hours, $%.2f (%d records)\n", totalHours, totalBillable, len(days))

	return nil
}
