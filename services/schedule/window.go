package schedule

import (
	"fmt"
	"strings"
	"time"

	"vistari/models"
)

// Fallback study window used when preferences carry no usable times.
const (
	defaultWindowStart = "09:00"
	defaultWindowEnd   = "17:00"
)

// WindowForDate derives the allowed study window for a calendar date
// from the student's preferences. A per-weekday slot wins over the
// general preferred times; a weekday whose slot is present but disabled
// yields no window at all (the student opted out of studying that day).
func WindowForDate(prefs models.StudyPreferences, date string) (Interval, bool, error) {
	day, err := weekdayOf(date)
	if err != nil {
		return Interval{}, false, err
	}

	start := prefs.PreferredStartTime
	end := prefs.PreferredEndTime

	for _, slot := range prefs.DayTimeSlots {
		if strings.ToLower(slot.Day) != day {
			continue
		}
		if !slot.Enabled {
			return Interval{}, false, nil
		}
		if slot.StartTime != "" {
			start = slot.StartTime
		}
		if slot.EndTime != "" {
			end = slot.EndTime
		}
		break
	}

	if start == "" {
		start = defaultWindowStart
	}
	if end == "" {
		end = defaultWindowEnd
	}

	window, err := ParseInterval(start, end)
	if err != nil {
		return Interval{}, false, fmt.Errorf("study window for %s: %w", date, err)
	}
	return window, true, nil
}

// weekdayOf returns the lowercase weekday name for an ISO date.
func weekdayOf(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid ISO date", ErrParse, date)
	}
	return strings.ToLower(t.Weekday().String()), nil
}
