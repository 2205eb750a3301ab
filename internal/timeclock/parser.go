package timeclock

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jgoulah/punchclock/pkg/models"
)

const (
	checkInMarker  = "i"
	checkOutMarker = "o"

	// Timestamps in the log carry no zone; they are resolved against the
	// local calendar.
	timestampLayout = "2006/01/02 15:04:05"
)

// MalformedLineError reports a log line that violates the alternating
// check-in/check-out structure. Line numbers are 1-based.
type MalformedLineError struct {
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed log line %d: %s", e.Line, e.Reason)
}

// Parser reads a timeclock log line by line and produces paired entries.
// Lines must strictly alternate check-in, check-out:
//
//	i YYYY/MM/DD HH:MM:SS <project label>
//	o YYYY/MM/DD HH:MM:SS
//
// A single trailing check-in with no check-out is tolerated: the entry is
// synthesized as checked out at the parser's reference time and flagged
// as dangling. Any other alternation violation is fatal.
//
// A Parser consumes its reader as it goes; it is single-use.
type Parser struct {
	scanner *bufio.Scanner
	clock   func() time.Time
	line    int
	done    bool
}

// New creates a parser over r using the wall clock as the reference time
// for a dangling check-in.
func New(r io.Reader) *Parser {
	return NewWithClock(r, time.Now)
}

// NewWithClock creates a parser with an explicit reference-time source,
// so reports over logs with a dangling check-in are reproducible.
func NewWithClock(r io.Reader, clock func() time.Time) *Parser {
	return &Parser{
		scanner: bufio.NewScanner(r),
		clock:   clock,
	}
}

// Next returns the next check-in/check-out pair, or (nil, nil) once the
// log is exhausted. After an error or end of input it keeps returning
// the same result.
func (p *Parser) Next() (*models.Entry, error) {
	if p.done {
		return nil, nil
	}

	inLine, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		p.done = true
		return nil, nil
	}

	checkIn, project, err := p.parseCheckIn(inLine)
	if err != nil {
		p.done = true
		return nil, err
	}

	entry := &models.Entry{
		Date:    time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.Local),
		CheckIn: checkIn,
		Project: project,
	}

	outLine, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		// Log ended mid-pair: still clocked in as of the reference time.
		p.done = true
		entry.CheckOut = p.clock()
		entry.Dangling = true
		return entry, nil
	}

	checkOut, err := p.parseCheckOut(outLine)
	if err != nil {
		p.done = true
		return nil, err
	}
	entry.CheckOut = checkOut

	return entry, nil
}

// readLine advances to the next line, tracking the 1-based line number.
func (p *Parser) readLine() (string, bool, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			p.done = true
			return "", false, fmt.Errorf("reading log: %w", err)
		}
		return "", false, nil
	}
	p.line++
	return p.scanner.Text(), true, nil
}

func (p *Parser) parseCheckIn(line string) (time.Time, string, error) {
	// Project labels may contain spaces, so only the marker, date and
	// time are split off.
	fields := strings.SplitN(line, " ", 4)
	if fields[0] != checkInMarker {
		return time.Time{}, "", &MalformedLineError{Line: p.line, Reason: fmt.Sprintf("expected check-in (%q), got %q", checkInMarker, fields[0])}
	}
	if len(fields) < 3 {
		return time.Time{}, "", &MalformedLineError{Line: p.line, Reason: "check-in is missing its date or time"}
	}

	ts, err := time.ParseInLocation(timestampLayout, fields[1]+" "+fields[2], time.Local)
	if err != nil {
		return time.Time{}, "", &MalformedLineError{Line: p.line, Reason: fmt.Sprintf("bad timestamp: %v", err)}
	}

	project := ""
	if len(fields) == 4 {
		project = fields[3]
	}
	return ts, project, nil
}

func (p *Parser) parseCheckOut(line string) (time.Time, error) {
	// Anything after the time on a check-out line is ignored.
	fields := strings.SplitN(line, " ", 4)
	if fields[0] != checkOutMarker {
		return time.Time{}, &MalformedLineError{Line: p.line, Reason: fmt.Sprintf("expected check-out (%q), got %q", checkOutMarker, fields[0])}
	}
	if len(fields) < 3 {
		return time.Time{}, &MalformedLineError{Line: p.line, Reason: "check-out is missing its date or time"}
	}

	ts, err := time.ParseInLocation(timestampLayout, fields[1]+" "+fields[2], time.Local)
	if err != nil {
		return time.Time{}, &MalformedLineError{Line: p.line, Reason: fmt.Sprintf("bad timestamp: %v", err)}
	}
	return ts, nil
}
