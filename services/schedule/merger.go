package schedule

import (
	"sort"

	"vistari/models"
)

// MergeDaySchedule applies per-date removals and additions to a
// persisted schedule and returns the updated copy. The input schedule is
// never mutated.
//
// Removal indices reference positions in the original list the caller
// holds, so they are applied in descending order to avoid index shift,
// and indices outside the current bounds are ignored as already removed.
// That makes the same removals map safe to apply twice. Additions are
// not idempotent: each call appends fresh (never completed) sessions, so
// callers issue an addition exactly once per accepted session.
func MergeDaySchedule(schedule models.DaySchedule, removals map[string][]int, additions map[string][]models.Session) models.DaySchedule {
	updated := schedule.Clone()
	if updated == nil {
		updated = models.DaySchedule{}
	}

	touched := make(map[string]bool)

	for date, indices := range removals {
		sessions, ok := updated[date]
		if !ok {
			continue
		}
		updated[date] = removeAtIndices(sessions, indices)
		touched[date] = true
	}

	for date, fresh := range additions {
		if len(fresh) == 0 {
			continue
		}
		sessions := updated[date]
		for _, s := range fresh {
			s.Completed = false
			sessions = append(sessions, s)
		}
		updated[date] = sessions
		touched[date] = true
	}

	for date := range touched {
		sortSessions(updated[date])
	}

	// No date keeps an empty list; pruning stops the map accumulating
	// husks as days are cleared out.
	for date, sessions := range updated {
		if len(sessions) == 0 {
			delete(updated, date)
		}
	}

	return updated
}

// removeAtIndices drops the sessions at the given positions, highest
// index first so earlier removals cannot shift later targets.
func removeAtIndices(sessions []models.Session, indices []int) []models.Session {
	ordered := make([]int, len(indices))
	copy(ordered, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	out := make([]models.Session, len(sessions))
	copy(out, sessions)
	seen := -1
	for _, idx := range ordered {
		if idx == seen {
			continue
		}
		seen = idx
		if idx < 0 || idx >= len(out) {
			continue
		}
		out = append(out[:idx], out[idx+1:]...)
	}
	return out
}

// sortSessions orders a day's sessions by start time ascending. The sort
// is stable: sessions sharing a start time keep the order they were
// supplied in. Valid zero-padded clock strings order lexically exactly
// as they do numerically.
func sortSessions(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Time < sessions[j].Time
	})
}
