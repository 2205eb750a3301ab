package models

import "time"

// Entry is a single check-in paired with its check-out.
type Entry struct {
	Date     time.Time `json:"date"`      // Just the date (midnight, local time)
	CheckIn  time.Time `json:"check_in"`  // Full timestamp
	CheckOut time.Time `json:"check_out"` // Full timestamp
	Project  string    `json:"project"`
	Dangling bool      `json:"dangling"` // Log ended before the matching check-out
}

// Hours returns the elapsed time of the entry in fractional hours.
func (e *Entry) Hours() float64 {
	return e.CheckOut.Sub(e.CheckIn).Hours()
}

// DayRecord is the aggregated summary of one calendar day's sessions.
type DayRecord struct {
	ID           int                `json:"id"`
	Date         time.Time          `json:"date"`       // Just the date (for querying)
	StartTime    time.Time          `json:"start_time"` // First check-in of the day
	EndTime      time.Time          `json:"end_time"`   // Last check-out of the day
	TotalHours   float64            `json:"total_hours"`
	ProjectHours map[string]float64 `json:"project_hours"`
}
