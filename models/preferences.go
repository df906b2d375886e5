package models

import "time"

// DayTimeSlot is a per-weekday study window preference. Day is a
// lowercase weekday name (e.g., "monday").
type DayTimeSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Enabled   bool   `json:"enabled"`
}

// StudyPreferences holds the scheduling preferences a student configures
// during onboarding. Time fields are "HH:MM" clock strings.
type StudyPreferences struct {
	PreferredStartTime string        `json:"preferredStartTime"`
	PreferredEndTime   string        `json:"preferredEndTime"`
	SessionDuration    int           `json:"sessionDuration"` // minutes, default 45
	BreakDuration      int           `json:"breakDuration"`   // minutes, default 15
	DayTimeSlots       []DayTimeSlot `json:"dayTimeSlots,omitempty"`

	SchoolStartTime  string `json:"schoolStartTime,omitempty"`
	SchoolEndTime    string `json:"schoolEndTime,omitempty"`
	StudyDuringLunch bool   `json:"studyDuringLunch"`
	LunchStart       string `json:"lunchStart,omitempty"`
	LunchEnd         string `json:"lunchEnd,omitempty"`
}

// Event is a fixed calendar entry (a lesson, a match, an appointment)
// that study sessions must not overlap.
type Event struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// HomeworkItem is an assignment the planner schedules ahead of its due
// date. Duration is in minutes.
type HomeworkItem struct {
	Subject  string `json:"subject"`
	Title    string `json:"title"`
	DueDate  string `json:"dueDate"` // ISO date
	Duration int    `json:"duration,omitempty"`
}

// TopicRef names a subject/topic pair queued for study, in priority
// order as chosen by the student or an upstream analysis step.
type TopicRef struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic,omitempty"`
}
