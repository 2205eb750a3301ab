package printer

import (
	"github.com/jgoulah/punchclock/internal/timeclock"
	"github.com/jgoulah/punchclock/pkg/models"
)

// Multi fans each printer call out to several printers in order,
// stopping at the first error.
type Multi []timeclock.Printer

func (m Multi) PrintHeader() error {
	for _, p := range m {
		if err := p.PrintHeader(); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PrintDay(day *models.DayRecord) error {
	for _, p := range m {
		if err := p.PrintDay(day); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PrintFooter(totalHours float64, days int) error {
	for _, p := range m {
		if err := p.PrintFooter(totalHours, days); err != nil {
			return err
		}
	}
	return nil
}
