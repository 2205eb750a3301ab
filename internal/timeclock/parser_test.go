package timeclock

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jgoulah/punchclock/pkg/models"
	"github.com/stretchr/testify/require"
)

func localTime(value string) time.Time {
	t, err := time.ParseInLocation("2006/01/02 15:04:05", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParser_Pairs(t *testing.T) {
	t.Parallel()

	log := strings.Join([]string{
		"i 2012/01/02 08:00:00 ProjectA",
		"o 2012/01/02 12:00:00",
		"i 2012/01/02 13:00:00 Big Customer Rollout",
		"o 2012/01/02 17:30:00 optional note",
	}, "\n")

	p := New(strings.NewReader(log))

	first, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, "ProjectA", first.Project)
	require.Equal(t, localTime("2012/01/02 08:00:00"), first.CheckIn)
	require.Equal(t, localTime("2012/01/02 12:00:00"), first.CheckOut)
	require.Equal(t, time.Date(2012, time.January, 2, 0, 0, 0, 0, time.Local), first.Date)
	require.False(t, first.Dangling)
	require.InDelta(t, 4.0, first.Hours(), 1e-9)

	second, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, second)
	// Project labels keep their spaces; the trailing field on the
	// check-out line is ignored.
	require.Equal(t, "Big Customer Rollout", second.Project)
	require.InDelta(t, 4.5, second.Hours(), 1e-9)

	done, err := p.Next()
	require.NoError(t, err)
	require.Nil(t, done)

	// Exhausted parsers stay exhausted.
	done, err = p.Next()
	require.NoError(t, err)
	require.Nil(t, done)
}

func TestParser_FractionalHours(t *testing.T) {
	t.Parallel()

	log := "i 2012/01/02 08:00:00 ProjectA\no 2012/01/02 08:20:00"
	p := New(strings.NewReader(log))

	entry, err := p.Next()
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, entry.Hours(), 1e-9)
}

func TestParser_NegativeDurationPassesThrough(t *testing.T) {
	t.Parallel()

	// Checkout before checkin is not validated; the subtraction is
	// surfaced as-is.
	log := "i 2012/01/02 12:00:00 ProjectA\no 2012/01/02 08:00:00"
	p := New(strings.NewReader(log))

	entry, err := p.Next()
	require.NoError(t, err)
	require.InDelta(t, -4.0, entry.Hours(), 1e-9)
}

func TestParser_DanglingCheckIn(t *testing.T) {
	t.Parallel()

	ref := localTime("2012/01/03 09:30:00")
	log := "i 2012/01/03 09:00:00 ProjectA"
	p := NewWithClock(strings.NewReader(log), func() time.Time { return ref })

	entry, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.True(t, entry.Dangling)
	require.Equal(t, ref, entry.CheckOut)
	require.InDelta(t, 0.5, entry.Hours(), 1e-9)

	done, err := p.Next()
	require.NoError(t, err)
	require.Nil(t, done)
}

func TestParser_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		log      string
		wantLine int
	}{
		{
			name:     "check-out first",
			log:      "o 2012/01/02 12:00:00",
			wantLine: 1,
		},
		{
			name:     "two consecutive check-ins",
			log:      "i 2012/01/02 08:00:00 ProjectA\ni 2012/01/02 09:00:00 ProjectB",
			wantLine: 2,
		},
		{
			name:     "unknown marker after a valid pair",
			log:      "i 2012/01/02 08:00:00 ProjectA\no 2012/01/02 12:00:00\nx 2012/01/02 13:00:00",
			wantLine: 3,
		},
		{
			name:     "check-in missing its time",
			log:      "i 2012/01/02",
			wantLine: 1,
		},
		{
			name:     "unparseable timestamp",
			log:      "i 2012-01-02 08:00:00 ProjectA",
			wantLine: 1,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := New(strings.NewReader(tc.log))

			var err error
			for {
				var entry *models.Entry
				entry, err = p.Next()
				if err != nil || entry == nil {
					break
				}
			}

			require.Error(t, err)
			var malformed *MalformedLineError
			require.True(t, errors.As(err, &malformed), "expected MalformedLineError, got %v", err)
			require.Equal(t, tc.wantLine, malformed.Line)
		})
	}
}

func TestParser_MalformedSecondPair(t *testing.T) {
	t.Parallel()

	log := strings.Join([]string{
		"i 2012/01/02 08:00:00 ProjectA",
		"o 2012/01/02 12:00:00",
		"i 2012/01/02 13:00:00 ProjectB",
		"i 2012/01/02 14:00:00 ProjectC",
	}, "\n")
	p := New(strings.NewReader(log))

	entry, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, entry)

	entry, err = p.Next()
	require.Error(t, err)
	require.Nil(t, entry)

	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	require.Equal(t, 4, malformed.Line)
	require.Contains(t, malformed.Error(), "line 4")
}
