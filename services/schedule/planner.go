package schedule

import (
	"sort"

	"vistari/models"
)

// Planner defaults applied when preferences carry zero values.
const (
	defaultSessionMinutes = 45
	defaultBreakMinutes   = 15
	// studySessionsPerBreak controls break cadence: a break goes in
	// after this many consecutive study sessions.
	studySessionsPerBreak = 2
)

// PlanDay fills the allowed window for a date with study sessions,
// front to back, skipping blocked intervals. Homework due after the
// target date is placed first (soonest due date leading), then the
// supplied topics in their priority order. Breaks are inserted between
// runs of study sessions. The output always passes ValidateCandidates
// for the same window and blocks.
func PlanDay(window Interval, blocks []Interval, prefs models.StudyPreferences, date string, topics []models.TopicRef, homeworks []models.HomeworkItem) []models.Session {
	sessionLen := prefs.SessionDuration
	if sessionLen <= 0 {
		sessionLen = defaultSessionMinutes
	}
	breakLen := prefs.BreakDuration
	if breakLen <= 0 {
		breakLen = defaultBreakMinutes
	}

	var plan []models.Session
	cursor := window.Start
	sinceBreak := 0

	place := func(length int, build func(Interval) models.Session) bool {
		start, ok := nextFit(cursor, length, window, blocks)
		if !ok {
			return false
		}
		span := Interval{Start: start, End: start + TimeOfDay(length)}
		plan = append(plan, build(span))
		cursor = span.End
		return true
	}

	maybeBreak := func() {
		if sinceBreak < studySessionsPerBreak {
			return
		}
		// A break that no longer fits is simply dropped; it should not
		// push real work out of the window.
		if place(breakLen, func(span Interval) models.Session {
			return models.Session{
				Time:     span.Start.Clock(),
				Subject:  "Break",
				Duration: breakLen,
				Kind:     models.SessionBreak,
			}
		}) {
			sinceBreak = 0
		}
	}

	for _, hw := range dueHomework(homeworks, date) {
		length := hw.Duration
		if length <= 0 {
			length = sessionLen
		}
		maybeBreak()
		ok := place(length, func(span Interval) models.Session {
			return models.Session{
				Time:     span.Start.Clock(),
				Subject:  hw.Subject,
				Topic:    hw.Title,
				Duration: length,
				Kind:     models.SessionHomework,
				Notes:    "Due " + hw.DueDate,
			}
		})
		if !ok {
			break
		}
		sinceBreak++
	}

	for _, topic := range topics {
		maybeBreak()
		ok := place(sessionLen, func(span Interval) models.Session {
			return models.Session{
				Time:     span.Start.Clock(),
				Subject:  topic.Subject,
				Topic:    topic.Topic,
				Duration: sessionLen,
				Kind:     models.SessionStudy,
			}
		})
		if !ok {
			break
		}
		sinceBreak++
	}

	return plan
}

// nextFit finds the earliest start at or after cursor where a block of
// the given length fits inside the window without touching a blocked
// interval.
func nextFit(cursor TimeOfDay, length int, window Interval, blocks []Interval) (TimeOfDay, bool) {
	if cursor < window.Start {
		cursor = window.Start
	}
	for {
		end := cursor + TimeOfDay(length)
		if end > window.End {
			return 0, false
		}
		span := Interval{Start: cursor, End: end}
		moved := false
		for _, b := range blocks {
			if span.Overlaps(b) {
				cursor = b.End
				moved = true
				break
			}
		}
		if !moved {
			return span.Start, true
		}
	}
}

// dueHomework filters to assignments still due after the target date and
// orders them soonest first. Ties keep input order.
func dueHomework(homeworks []models.HomeworkItem, date string) []models.HomeworkItem {
	due := make([]models.HomeworkItem, 0, len(homeworks))
	for _, hw := range homeworks {
		if hw.DueDate > date {
			due = append(due, hw)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate < due[j].DueDate
	})
	return due
}
