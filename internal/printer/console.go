package printer

import (
	"fmt"
	"io"
	"sort"

	"github.com/jgoulah/punchclock/internal/config"
	"github.com/jgoulah/punchclock/pkg/models"
)

// Console renders a work-hours report as a plain-text table.
type Console struct {
	w     io.Writer
	rates *config.Config // nil disables billing columns
}

// NewConsole creates a console printer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// NewConsoleWithRates creates a console printer that also shows the
// billable amount for projects with a configured hourly rate.
func NewConsoleWithRates(w io.Writer, cfg *config.Config) *Console {
	return &Console{w: w, rates: cfg}
}

// PrintHeader writes the report banner.
func (c *Console) PrintHeader() error {
	fmt.Fprintln(c.w, "Timeclock Report")
	fmt.Fprintln(c.w, "========================================")
	return nil
}

// PrintDay writes one day's summary line followed by its per-project
// breakdown, projects in alphabetical order.
func (c *Console) PrintDay(day *models.DayRecord) error {
	fmt.Fprintf(c.w, "\n%s  %s - %s  %8.2fh\n",
		day.Date.Format("2006-01-02"),
		day.StartTime.Format("15:04:05"),
		day.EndTime.Format("15:04:05"),
		day.TotalHours)

	projects := make([]string, 0, len(day.ProjectHours))
	for project := range day.ProjectHours {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for _, project := range projects {
		hours := day.ProjectHours[project]
		if c.rates != nil {
			if rate := c.rates.GetRate(project); rate > 0 {
				fmt.Fprintf(c.w, "    %-30s  %8.2fh  $%9.2f\n", project, hours, hours*rate)
				continue
			}
		}
		fmt.Fprintf(c.w, "    %-30s  %8.2fh\n", project, hours)
	}

	return nil
}

// PrintFooter writes the year-to-date summary.
func (c *Console) PrintFooter(totalHours float64, days int) error {
	fmt.Fprintln(c.w, "\n----------------------------------------")
	fmt.Fprintf(c.w, "Total: %.2f hours over %d days\n", totalHours, days)
	return nil
}
