package models

// SessionKind classifies what a scheduled block is for.
type SessionKind string

const (
	SessionStudy    SessionKind = "study"
	SessionHomework SessionKind = "homework"
	SessionRevision SessionKind = "revision"
	SessionBreak    SessionKind = "break"
)

// Valid reports whether the kind is one of the known session kinds.
func (k SessionKind) Valid() bool {
	switch k {
	case SessionStudy, SessionHomework, SessionRevision, SessionBreak:
		return true
	}
	return false
}

// Session is a single scheduled block of study activity on some date.
// Time is a zero-padded 24-hour clock string (e.g., "09:15"); Duration is
// in minutes. Sessions are never edited in place: a change is a removal
// plus a fresh addition.
type Session struct {
	Time      string      `json:"time"`
	Subject   string      `json:"subject"`
	Topic     string      `json:"topic,omitempty"`
	Duration  int         `json:"duration"`
	Kind      SessionKind `json:"type"`
	Notes     string      `json:"notes,omitempty"`
	Completed bool        `json:"completed"`
}

// DaySchedule maps an ISO date ("2006-01-02") to that day's sessions,
// ordered by start time ascending. No date maps to an empty list.
type DaySchedule map[string][]Session

// Clone returns a deep copy so callers can merge without mutating the
// persisted structure they still hold.
func (ds DaySchedule) Clone() DaySchedule {
	if ds == nil {
		return nil
	}
	out := make(DaySchedule, len(ds))
	for date, sessions := range ds {
		copied := make([]Session, len(sessions))
		copy(copied, sessions)
		out[date] = copied
	}
	return out
}

// SessionCount totals sessions across all dates.
func (ds DaySchedule) SessionCount() int {
	n := 0
	for _, sessions := range ds {
		n += len(sessions)
	}
	return n
}
