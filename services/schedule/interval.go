package schedule

import (
	"fmt"
	"regexp"
)

// minutesPerDay bounds every TimeOfDay value; sessions never wrap past
// midnight.
const minutesPerDay = 24 * 60

// TimeOfDay is a count of minutes from midnight (e.g., 420 for 7:00 AM),
// always in [0, 1440).
type TimeOfDay int

// Clock renders the value back to a zero-padded "HH:MM" string.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// clockPattern is the validation boundary for clock strings: zero-padded
// 24-hour "HH:MM" between 00:00 and 23:59. Anything else is rejected.
var clockPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock parses a zero-padded "HH:MM" clock string into a TimeOfDay.
func ParseClock(s string) (TimeOfDay, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrParse, s)
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return TimeOfDay(hh*60 + mm), nil
}

// Interval is a half-open [Start, End) block of time within a single
// day, with Start < End.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewInterval builds an interval, rejecting empty or inverted spans and
// anything outside a single day.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start < 0 || end > minutesPerDay || start >= end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidSpan, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval builds an interval from two clock strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// Overlaps reports whether two intervals intersect. Half-open semantics:
// touching endpoints do not count.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether the other interval lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// Minutes is the interval's length.
func (i Interval) Minutes() int {
	return int(i.End - i.Start)
}

func (i Interval) String() string {
	return i.Start.Clock() + "-" + i.End.Clock()
}
