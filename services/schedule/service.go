package schedule

import (
	"go.uber.org/zap"

	"vistari/models"
	"vistari/utils"
)

// ScheduleService defines the operations the timetable handlers consume.
type ScheduleService interface {
	// RegenerateDay validates a generator's candidate sessions for one
	// date against the student's window and blocked intervals.
	RegenerateDay(req RegenerateDayRequest) (RegenerateDayResult, error)
	// Reconcile merges per-date removals and already-validated additions
	// into a persisted schedule and returns the updated copy.
	Reconcile(req ReconcileRequest) (models.DaySchedule, error)
	// PlanDay produces a rule-based schedule for a date when no
	// generator output is available.
	PlanDay(req PlanDayRequest) ([]models.Session, error)
}

// RegenerateDayRequest carries everything needed to validate one day's
// worth of proposed sessions. Candidates come from an external generator
// and arrive in its priority order.
type RegenerateDayRequest struct {
	Date        string                  `json:"date"`
	Preferences models.StudyPreferences `json:"preferences"`
	Events      []models.Event          `json:"events,omitempty"`
	Candidates  []models.Session        `json:"candidates"`
}

// RegenerateDayResult reports the validation outcome plus the derived
// constraints, so the caller can feed rejections back to the generator.
type RegenerateDayResult struct {
	Window   Interval         `json:"window"`
	Blocks   []Interval       `json:"blocks"`
	Accepted []models.Session `json:"accepted"`
	Rejected []Rejection      `json:"rejected"`
}

// ReconcileRequest carries a persisted schedule and the per-date edits
// to fold into it.
type ReconcileRequest struct {
	Schedule  models.DaySchedule          `json:"schedule"`
	Removals  map[string][]int            `json:"removals,omitempty"`
	Additions map[string][]models.Session `json:"additions,omitempty"`
}

// PlanDayRequest asks for a rule-based plan for one date.
type PlanDayRequest struct {
	Date        string                  `json:"date"`
	Preferences models.StudyPreferences `json:"preferences"`
	Events      []models.Event          `json:"events,omitempty"`
	Topics      []models.TopicRef       `json:"topics,omitempty"`
	Homeworks   []models.HomeworkItem   `json:"homeworks,omitempty"`
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Logger *zap.Logger
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultScheduleService) RegenerateDay(req RegenerateDayRequest) (RegenerateDayResult, error) {
	logger := s.logger()

	window, enabled, err := WindowForDate(req.Preferences, req.Date)
	if err != nil {
		return RegenerateDayResult{}, err
	}
	if !enabled {
		logger.Info("regenerate: day disabled by preferences", zap.String("date", req.Date))
		return RegenerateDayResult{}, NewScheduleError("dayDisabled", "no study window is enabled for "+req.Date)
	}

	blocks, err := BlocksForDate(req.Preferences, req.Events, req.Date)
	if err != nil {
		return RegenerateDayResult{}, err
	}

	report := ValidateCandidates(window, blocks, req.Candidates)
	logger.Info("regenerate: candidates validated",
		zap.String("date", req.Date),
		zap.String("window", window.String()),
		zap.Int("blocks", len(blocks)),
		zap.Int("accepted", len(report.Accepted)),
		zap.Int("rejected", len(report.Rejected)),
	)

	return RegenerateDayResult{
		Window:   window,
		Blocks:   blocks,
		Accepted: report.Accepted,
		Rejected: report.Rejected,
	}, nil
}

func (s *DefaultScheduleService) Reconcile(req ReconcileRequest) (models.DaySchedule, error) {
	updated := MergeDaySchedule(req.Schedule, req.Removals, req.Additions)
	s.logger().Info("reconcile: schedule merged",
		zap.Int("datesBefore", len(req.Schedule)),
		zap.Int("datesAfter", len(updated)),
		zap.Int("sessions", updated.SessionCount()),
	)
	return updated, nil
}

func (s *DefaultScheduleService) PlanDay(req PlanDayRequest) ([]models.Session, error) {
	logger := s.logger()

	window, enabled, err := WindowForDate(req.Preferences, req.Date)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, NewScheduleError("dayDisabled", "no study window is enabled for "+req.Date)
	}

	blocks, err := BlocksForDate(req.Preferences, req.Events, req.Date)
	if err != nil {
		return nil, err
	}

	plan := PlanDay(window, blocks, req.Preferences, req.Date, req.Topics, req.Homeworks)
	logger.Info("plan: day planned",
		zap.String("date", req.Date),
		zap.String("window", window.String()),
		zap.Int("sessions", len(plan)),
	)
	return plan, nil
}
