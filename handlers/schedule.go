package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vistari/models"
	"vistari/services/schedule"
	"vistari/utils"
)

// ScheduleHandler exposes the schedule validation and reconciliation
// endpoints. The service is pure: every request carries its own schedule
// and preferences, and the response carries the result back for the
// caller to persist.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// regenerateDayInput accepts candidates either pre-parsed or as the raw
// generator output (possibly fenced JSON).
type regenerateDayInput struct {
	Date            string                  `json:"date" binding:"required"`
	Preferences     models.StudyPreferences `json:"preferences"`
	Events          []models.Event          `json:"events"`
	Candidates      []models.Session        `json:"candidates"`
	GeneratorOutput string                  `json:"generatorOutput"`
}

// RegenerateDayHandler validates one day's candidate sessions against
// the student's window and blocked intervals.
func (h *ScheduleHandler) RegenerateDayHandler(c *gin.Context) {
	var input regenerateDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	candidates := input.Candidates
	summary := ""
	if len(candidates) == 0 && input.GeneratorOutput != "" {
		decoded, s, err := schedule.DecodeDayCandidates(input.GeneratorOutput)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid generator output", err.Error())
			return
		}
		candidates = decoded
		summary = s
	}

	result, err := h.Service.RegenerateDay(schedule.RegenerateDayRequest{
		Date:        input.Date,
		Preferences: input.Preferences,
		Events:      input.Events,
		Candidates:  candidates,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":   result.Window,
		"blocks":   result.Blocks,
		"accepted": result.Accepted,
		"rejected": result.Rejected,
		"summary":  summary,
	})
}

// ReconcileHandler merges per-date removals and additions into the
// supplied schedule.
func (h *ScheduleHandler) ReconcileHandler(c *gin.Context) {
	var input schedule.ReconcileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Reconcile(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": updated})
}

// PlanDayHandler produces a rule-based plan for one date.
func (h *ScheduleHandler) PlanDayHandler(c *gin.Context) {
	var input schedule.PlanDayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date is required")
		return
	}

	plan, err := h.Service.PlanDay(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": input.Date, "schedule": plan})
}

func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	var schedErr *schedule.ScheduleError
	switch {
	case errors.As(err, &schedErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, schedErr.Code, schedErr.Message)
	case errors.Is(err, schedule.ErrParse), errors.Is(err, schedule.ErrInvalidSpan):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	default:
		h.Logger.Error("schedule handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
