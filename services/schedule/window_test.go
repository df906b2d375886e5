package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistari/models"
)

func TestWindowForDate_DefaultsWhenUnset(t *testing.T) {
	// 2024-06-03 is a Monday.
	window, enabled, err := WindowForDate(models.StudyPreferences{}, "2024-06-03")
	require.NoError(t, err)
	require.True(t, enabled)
	assert.Equal(t, "09:00-17:00", window.String())
}

func TestWindowForDate_PreferredTimes(t *testing.T) {
	prefs := models.StudyPreferences{
		PreferredStartTime: "16:00",
		PreferredEndTime:   "20:00",
	}
	window, enabled, err := WindowForDate(prefs, "2024-06-03")
	require.NoError(t, err)
	require.True(t, enabled)
	assert.Equal(t, "16:00-20:00", window.String())
}

func TestWindowForDate_DaySlotOverridesPreferred(t *testing.T) {
	prefs := models.StudyPreferences{
		PreferredStartTime: "09:00",
		PreferredEndTime:   "17:00",
		DayTimeSlots: []models.DayTimeSlot{
			{Day: "saturday", StartTime: "10:00", EndTime: "14:00", Enabled: true},
		},
	}

	// 2024-06-08 is a Saturday.
	window, enabled, err := WindowForDate(prefs, "2024-06-08")
	require.NoError(t, err)
	require.True(t, enabled)
	assert.Equal(t, "10:00-14:00", window.String())

	// Monday falls back to the preferred times.
	window, enabled, err = WindowForDate(prefs, "2024-06-03")
	require.NoError(t, err)
	require.True(t, enabled)
	assert.Equal(t, "09:00-17:00", window.String())
}

func TestWindowForDate_DisabledDayYieldsNoWindow(t *testing.T) {
	prefs := models.StudyPreferences{
		DayTimeSlots: []models.DayTimeSlot{
			{Day: "sunday", StartTime: "10:00", EndTime: "14:00", Enabled: false},
		},
	}

	// 2024-06-09 is a Sunday.
	_, enabled, err := WindowForDate(prefs, "2024-06-09")
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestWindowForDate_BadInputs(t *testing.T) {
	_, _, err := WindowForDate(models.StudyPreferences{}, "June 3rd")
	assert.ErrorIs(t, err, ErrParse)

	prefs := models.StudyPreferences{PreferredStartTime: "17:00", PreferredEndTime: "09:00"}
	_, _, err = WindowForDate(prefs, "2024-06-03")
	assert.ErrorIs(t, err, ErrInvalidSpan)
}
