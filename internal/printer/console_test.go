package printer

import (
	"strings"
	"testing"
	"time"

	"github.com/jgoulah/punchclock/internal/config"
	"github.com/jgoulah/punchclock/pkg/models"
	"github.com/stretchr/testify/require"
)

func sampleDay() *models.DayRecord {
	return &models.DayRecord{
		Date:       time.Date(2012, time.January, 2, 0, 0, 0, 0, time.Local),
		StartTime:  time.Date(2012, time.January, 2, 8, 0, 0, 0, time.Local),
		EndTime:    time.Date(2012, time.January, 2, 17, 0, 0, 0, time.Local),
		TotalHours: 8,
		ProjectHours: map[string]float64{
			"ProjectB": 4,
			"ProjectA": 4,
		},
	}
}

func TestConsole_Report(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	c := NewConsole(&buf)

	require.NoError(t, c.PrintHeader())
	require.NoError(t, c.PrintDay(sampleDay()))
	require.NoError(t, c.PrintFooter(8.5, 2))

	out := buf.String()
	require.Contains(t, out, "Timeclock Report")
	require.Contains(t, out, "2012-01-02  08:00:00 - 17:00:00")
	require.Contains(t, out, "8.00h")
	require.Contains(t, out, "Total: 8.50 hours over 2 days")

	// Projects are listed alphabetically.
	require.Less(t, strings.Index(out, "ProjectA"), strings.Index(out, "ProjectB"))
}

func TestConsole_BillingRates(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Rates:       map[string]float64{"ProjectA": 100},
		DefaultRate: 0,
	}

	var buf strings.Builder
	c := NewConsoleWithRates(&buf, cfg)
	require.NoError(t, c.PrintDay(sampleDay()))

	out := buf.String()
	require.Contains(t, out, "$   400.00")
	// ProjectB has no rate and no default, so no amount is shown for it.
	require.Equal(t, 1, strings.Count(out, "$"))
}

func TestMulti_FansOut(t *testing.T) {
	t.Parallel()

	var first, second strings.Builder
	m := Multi{NewConsole(&first), NewConsole(&second)}

	require.NoError(t, m.PrintHeader())
	require.NoError(t, m.PrintDay(sampleDay()))
	require.NoError(t, m.PrintFooter(8, 1))

	require.Equal(t, first.String(), second.String())
	require.Contains(t, first.String(), "Total: 8.00 hours over 1 days")
}
