package timeclock

import (
	"fmt"
	"time"

	"github.com/jgoulah/punchclock/pkg/models"
)

// NotCheckedOutSuffix marks a project whose last session had no
// check-out before the log ended.
const NotCheckedOutSuffix = " (NOT checked out)"

// Printer receives the finished pieces of a report. Implementations may
// render, store, or forward them; the aggregator calls PrintHeader once,
// PrintDay once per completed day in log order, and PrintFooter exactly
// once at the end.
type Printer interface {
	PrintHeader() error
	PrintDay(day *models.DayRecord) error
	PrintFooter(totalHours float64, days int) error
}

// Generate drives one full report: it consumes every entry from the
// parser, folds it into the running day, and hands each completed day
// to the printer when the date changes. The last day is emitted after
// the log is exhausted, followed by the footer with the year-to-date
// total and day count.
//
// Emitted DayRecords are handed off by pointer and never touched again.
func Generate(p *Parser, out Printer) error {
	if err := out.PrintHeader(); err != nil {
		return fmt.Errorf("printing header: %w", err)
	}

	var (
		day        *models.DayRecord // nil until the first entry
		totalHours float64
		days       int
	)

	for {
		entry, err := p.Next()
		if err != nil {
			return err
		}
		if entry == nil {
			break
		}

		if day == nil {
			day = newDay(entry)
		} else if !sameDate(day.Date, entry.Date) {
			totalHours += day.TotalHours
			days++
			if err := out.PrintDay(day); err != nil {
				return fmt.Errorf("printing day %s: %w", day.Date.Format("2006-01-02"), err)
			}
			day = newDay(entry)
		}

		hours := entry.Hours()
		day.TotalHours += hours
		day.EndTime = entry.CheckOut
		day.ProjectHours[entry.Project] += hours

		if entry.Dangling {
			// The whole of today's time for this project moves under the
			// marked name, not just this entry's share.
			day.ProjectHours[entry.Project+NotCheckedOutSuffix] = day.ProjectHours[entry.Project]
			delete(day.ProjectHours, entry.Project)
		}
	}

	if day != nil {
		totalHours += day.TotalHours
		days++
		if err := out.PrintDay(day); err != nil {
			return fmt.Errorf("printing day %s: %w", day.Date.Format("2006-01-02"), err)
		}
	}

	if err := out.PrintFooter(totalHours, days); err != nil {
		return fmt.Errorf("printing footer: %w", err)
	}
	return nil
}

func newDay(entry *models.Entry) *models.DayRecord {
	return &models.DayRecord{
		Date:         entry.Date,
		StartTime:    entry.CheckIn,
		ProjectHours: make(map[string]float64),
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
