package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistari/models"
)

func TestPlanDay_FillsWindowFrontToBack(t *testing.T) {
	window := mustWindow(t, "09:00", "12:00")
	prefs := models.StudyPreferences{SessionDuration: 45, BreakDuration: 15}
	topics := []models.TopicRef{
		{Subject: "Maths", Topic: "Algebra"},
		{Subject: "English", Topic: "Poetry"},
	}

	plan := PlanDay(window, nil, prefs, "2024-06-03", topics, nil)

	require.Len(t, plan, 2)
	assert.Equal(t, "09:00", plan[0].Time)
	assert.Equal(t, "Maths", plan[0].Subject)
	assert.Equal(t, "09:45", plan[1].Time)
	assert.Equal(t, "English", plan[1].Subject)
}

func TestPlanDay_InsertsBreakAfterTwoSessions(t *testing.T) {
	window := mustWindow(t, "09:00", "17:00")
	prefs := models.StudyPreferences{SessionDuration: 45, BreakDuration: 15}
	topics := []models.TopicRef{
		{Subject: "Maths"}, {Subject: "English"}, {Subject: "Physics"},
	}

	plan := PlanDay(window, nil, prefs, "2024-06-03", topics, nil)

	require.Len(t, plan, 4)
	assert.Equal(t, models.SessionBreak, plan[2].Kind)
	assert.Equal(t, "10:30", plan[2].Time)
	assert.Equal(t, "Physics", plan[3].Subject)
	assert.Equal(t, "10:45", plan[3].Time)
}

func TestPlanDay_SkipsBlockedIntervals(t *testing.T) {
	window := mustWindow(t, "09:00", "17:00")
	blocks := []Interval{mustWindow(t, "09:30", "15:30")}
	prefs := models.StudyPreferences{SessionDuration: 45}
	topics := []models.TopicRef{{Subject: "Maths"}}

	plan := PlanDay(window, blocks, prefs, "2024-06-03", topics, nil)

	// 09:00 start cannot fit 45 minutes before the block, so the first
	// session lands right after it.
	require.Len(t, plan, 1)
	assert.Equal(t, "15:30", plan[0].Time)
}

func TestPlanDay_HomeworkDueSoonestFirst(t *testing.T) {
	window := mustWindow(t, "16:00", "20:00")
	prefs := models.StudyPreferences{SessionDuration: 45}
	topics := []models.TopicRef{{Subject: "Chemistry"}}
	homeworks := []models.HomeworkItem{
		{Subject: "English", Title: "Essay", DueDate: "2024-06-10", Duration: 30},
		{Subject: "Maths", Title: "Worksheet", DueDate: "2024-06-05", Duration: 30},
		{Subject: "History", Title: "Reading", DueDate: "2024-06-01", Duration: 30}, // already past
	}

	plan := PlanDay(window, nil, prefs, "2024-06-03", topics, homeworks)

	require.Len(t, plan, 4) // 2 homework + break + 1 study
	assert.Equal(t, models.SessionHomework, plan[0].Kind)
	assert.Equal(t, "Maths", plan[0].Subject)
	assert.Equal(t, models.SessionHomework, plan[1].Kind)
	assert.Equal(t, "English", plan[1].Subject)
	assert.Equal(t, "Chemistry", plan[3].Subject)
}

func TestPlanDay_StopsWhenWindowFull(t *testing.T) {
	window := mustWindow(t, "09:00", "10:00")
	prefs := models.StudyPreferences{SessionDuration: 45}
	topics := []models.TopicRef{{Subject: "A"}, {Subject: "B"}, {Subject: "C"}}

	plan := PlanDay(window, nil, prefs, "2024-06-03", topics, nil)

	require.Len(t, plan, 1)
	assert.Equal(t, "A", plan[0].Subject)
}

func TestPlanDay_OutputAlwaysValidates(t *testing.T) {
	window := mustWindow(t, "09:00", "21:00")
	blocks := []Interval{
		mustWindow(t, "08:30", "15:30"),
		mustWindow(t, "18:00", "18:45"),
	}
	prefs := models.StudyPreferences{SessionDuration: 45, BreakDuration: 15}
	topics := []models.TopicRef{
		{Subject: "Maths"}, {Subject: "English"}, {Subject: "Physics"},
		{Subject: "Chemistry"}, {Subject: "Biology"},
	}
	homeworks := []models.HomeworkItem{
		{Subject: "French", Title: "Vocab", DueDate: "2024-06-05", Duration: 30},
	}

	plan := PlanDay(window, blocks, prefs, "2024-06-03", topics, homeworks)
	require.NotEmpty(t, plan)

	report := ValidateCandidates(window, blocks, plan)
	assert.Len(t, report.Accepted, len(plan), "planned sessions must all validate")
	assert.Empty(t, report.Rejected)
}

func TestPlanDay_DefaultsApplied(t *testing.T) {
	window := mustWindow(t, "09:00", "11:00")
	plan := PlanDay(window, nil, models.StudyPreferences{}, "2024-06-03", []models.TopicRef{{Subject: "Maths"}}, nil)

	require.Len(t, plan, 1)
	assert.Equal(t, 45, plan[0].Duration)
}
