package schedule

import (
	"sort"
	"time"

	"vistari/models"
)

// BlocksForDate collects the intervals that must stay free of study
// sessions on the given date: weekday school hours (minus the lunch
// window when lunch study is enabled) and any calendar events touching
// the date, clipped to the day. The result is sorted by start time.
func BlocksForDate(prefs models.StudyPreferences, events []models.Event, date string) ([]Interval, error) {
	day, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	var blocks []Interval

	if isWeekday(day) && prefs.SchoolStartTime != "" && prefs.SchoolEndTime != "" {
		school, err := ParseInterval(prefs.SchoolStartTime, prefs.SchoolEndTime)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, carveLunch(school, prefs)...)
	}

	eventBlocks, err := eventBlocksForDate(events, date)
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, eventBlocks...)

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Start == blocks[j].Start {
			return blocks[i].End < blocks[j].End
		}
		return blocks[i].Start < blocks[j].Start
	})
	return blocks, nil
}

// carveLunch splits the school block around the lunch window when the
// student studies through lunch; otherwise school hours block solid.
func carveLunch(school Interval, prefs models.StudyPreferences) []Interval {
	if !prefs.StudyDuringLunch || prefs.LunchStart == "" || prefs.LunchEnd == "" {
		return []Interval{school}
	}
	lunch, err := ParseInterval(prefs.LunchStart, prefs.LunchEnd)
	if err != nil || !school.Overlaps(lunch) {
		return []Interval{school}
	}

	var parts []Interval
	if school.Start < lunch.Start {
		parts = append(parts, Interval{Start: school.Start, End: lunch.Start})
	}
	if lunch.End < school.End {
		parts = append(parts, Interval{Start: lunch.End, End: school.End})
	}
	return parts
}

// eventBlocksForDate converts the events overlapping the date into
// day-local intervals, clipping multi-day events at the day boundaries.
func eventBlocksForDate(events []models.Event, date string) ([]Interval, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var blocks []Interval
	for _, evt := range events {
		if !evt.StartTime.Before(dayEnd) || !evt.EndTime.After(dayStart) {
			continue
		}
		start := 0
		if evt.StartTime.After(dayStart) {
			start = evt.StartTime.Hour()*60 + evt.StartTime.Minute()
		}
		end := minutesPerDay
		if evt.EndTime.Before(dayEnd) {
			end = evt.EndTime.Hour()*60 + evt.EndTime.Minute()
		}
		if start >= end {
			continue
		}
		blocks = append(blocks, Interval{Start: TimeOfDay(start), End: TimeOfDay(end)})
	}
	return blocks, nil
}

func isWeekday(day string) bool {
	return day != "saturday" && day != "sunday"
}
