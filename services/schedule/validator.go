package schedule

import (
	"errors"

	"vistari/models"
)

// RejectReason explains why a candidate session was not accepted.
type RejectReason string

const (
	// ReasonOutOfWindow: the session does not fit inside the allowed
	// study window for the day.
	ReasonOutOfWindow RejectReason = "out_of_window"
	// ReasonBlocked: the session overlaps school hours or a fixed event.
	ReasonBlocked RejectReason = "blocked_by_existing"
	// ReasonInvalidSpan: the session runs past midnight or has a
	// non-positive duration.
	ReasonInvalidSpan RejectReason = "invalid_span"
	// ReasonParseError: the session's time string is not valid HH:MM.
	ReasonParseError RejectReason = "parse_error"
)

// Rejection pairs a dropped candidate with the reason it was dropped, so
// the caller can ask the generator for a revised one.
type Rejection struct {
	Session models.Session `json:"session"`
	Reason  RejectReason   `json:"reason"`
	Detail  string         `json:"detail,omitempty"`
}

// Report is the outcome of validating a candidate list. Accepted
// preserves the caller's input order; validation filters, it never
// reorders or reshapes.
type Report struct {
	Accepted []models.Session `json:"accepted"`
	Rejected []Rejection      `json:"rejected"`
}

// ValidateCandidates partitions candidates into accepted and rejected
// against the allowed window and the blocked intervals for the target
// day. A rejection is terminal for this pass: no clipping or shifting is
// attempted, since moving one session risks cascading conflicts through
// the rest of the day.
func ValidateCandidates(window Interval, blocks []Interval, candidates []models.Session) Report {
	report := Report{
		Accepted: make([]models.Session, 0, len(candidates)),
		Rejected: make([]Rejection, 0),
	}

	for _, candidate := range candidates {
		span, err := sessionInterval(candidate)
		if err != nil {
			reason := ReasonInvalidSpan
			if errors.Is(err, ErrParse) {
				reason = ReasonParseError
			}
			report.Rejected = append(report.Rejected, Rejection{
				Session: candidate,
				Reason:  reason,
				Detail:  err.Error(),
			})
			continue
		}

		if !window.Contains(span) {
			report.Rejected = append(report.Rejected, Rejection{
				Session: candidate,
				Reason:  ReasonOutOfWindow,
				Detail:  span.String() + " outside window " + window.String(),
			})
			continue
		}

		if blocked, hit := firstOverlap(span, blocks); hit {
			report.Rejected = append(report.Rejected, Rejection{
				Session: candidate,
				Reason:  ReasonBlocked,
				Detail:  span.String() + " overlaps blocked " + blocked.String(),
			})
			continue
		}

		report.Accepted = append(report.Accepted, candidate)
	}

	return report
}

// sessionInterval computes the occupied interval for a session from its
// clock string and duration. End may land exactly on midnight; anything
// past it crosses into the next day and is invalid.
func sessionInterval(s models.Session) (Interval, error) {
	start, err := ParseClock(s.Time)
	if err != nil {
		return Interval{}, err
	}
	if s.Duration <= 0 {
		return Interval{}, errNonPositiveDuration(s.Duration)
	}
	end := int(start) + s.Duration
	if end > minutesPerDay {
		return Interval{}, errCrossesMidnight(start, s.Duration)
	}
	return Interval{Start: start, End: TimeOfDay(end)}, nil
}

func firstOverlap(span Interval, blocks []Interval) (Interval, bool) {
	for _, b := range blocks {
		if span.Overlaps(b) {
			return b, true
		}
	}
	return Interval{}, false
}
