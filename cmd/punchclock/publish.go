package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/punchclock/internal/publisher"
	"github.com/jgoulah/punchclock/pkg/models"
	"github.com/spf13/cobra"
)

var (
	publishSince string
	publishUntil string
	publishAll   bool
	publishLimit int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish archived day records over MQTT",
	Long:  `Reads archived day records from the database and publishes each one as a retained JSON message to the configured MQTT broker.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishSince, "since", "", "Only publish records since this date (YYYY-MM-DD or relative like 7d)")
	publishCmd.Flags().StringVar(&publishUntil, "until", "", "Only publish records until this date (YYYY-MM-DD)")
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Force republish all records (ignore published flag)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 0, "Limit number of records to publish (0 = no limit)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create publisher
	pub, err := publisher.New(cfg)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Get day records based on --all flag
	var days []models.DayRecord
	if publishAll {
		// When using --all, force republish ALL records
		days, err = db.ListDays()
	} else {
		// Default: only publish unpublished records
		days, err = db.ListUnpublishedDays()
	}
	if err != nil {
		return fmt.Errorf("listing day records: %w", err)
	}

	if len(days) == 0 {
		if publishAll {
			fmt.Println("No day records found")
		} else {
			fmt.Println("No unpublished day records found")
		}
		return nil
	}

	// Parse date filters if provided
	var sinceDate, untilDate *time.Time
	if publishSince != "" {
		since, err := parseDate(publishSince)
		if err != nil {
			return fmt.Errorf("parsing --since date: %w", err)
		}
		sinceDate = &since
	}
	if publishUntil != "" {
		until, err := parseDate(publishUntil)
		if err != nil {
			return fmt.Errorf("parsing --until date: %w", err)
		}
		untilDate = &until
	}

	// Filter by date range if specified
	filtered := days
	if sinceDate != nil || untilDate != nil {
		filtered = []models.DayRecord{}
		for _, day := range days {
			if sinceDate != nil && day.Date.Before(*sinceDate) {
				continue
			}
			if untilDate != nil && day.Date.After(*untilDate) {
				continue
			}
			filtered = append(filtered, day)
		}
	}

	if len(filtered) == 0 {
		fmt.Println("No day records in date range")
		return nil
	}

	// Apply limit if specified
	if publishLimit > 0 && len(filtered) > publishLimit {
		filtered = filtered[:publishLimit]
		fmt.Printf("Limiting to %d records (--limit flag)\n", publishLimit)
	}

	// Publish each record
	fmt.Printf("Publishing %d day records...\n", len(filtered))
	published := 0
	for i, day := range filtered {
		fmt.Printf("[%d/%d] Publishing %s (%.2f hours)... ", i+1, len(filtered), day.Date.Format("2006-01-02"), day.TotalHours)
		if err := pub.Publish(&day); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		// Mark record as published in database
		if err := db.MarkPublished(day.ID); err != nil {
			fmt.Printf("✓ (warning: failed to mark as published: %v)\n", err)
		} else {
			fmt.Printf("✓\n")
		}
		published++
	}

	fmt.Printf("\nSuccessfully published %d/%d day records\n", published, len(filtered))
	return nil
}

// parseDate parses a date string in either YYYY-MM-DD format or relative format (e.g., "7d")
func parseDate(dateStr string) (time.Time, error) {
	// Try absolute date format first
	t, err := time.Parse("2006-01-02", dateStr)
	if err == nil {
		return t, nil
	}

	// Try relative format (e.g., "7d" for 7 days ago)
	if len(dateStr) > 1 && dateStr[len(dateStr)-1] == 'd' {
		daysStr := dateStr[:len(dateStr)-1]
		var days int
		if _, err := fmt.Sscanf(daysStr, "%d", &days); err == nil {
			return time.Now().AddDate(0, 0, -days), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD or Nd for N days ago)", dateStr)
}
