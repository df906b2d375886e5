package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistari/models"
)

func TestBlocksForDate_SchoolHoursOnWeekdays(t *testing.T) {
	prefs := models.StudyPreferences{
		SchoolStartTime: "08:30",
		SchoolEndTime:   "15:30",
	}

	// Monday: school blocks.
	blocks, err := BlocksForDate(prefs, nil, "2024-06-03")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "08:30-15:30", blocks[0].String())

	// Saturday: no school.
	blocks, err = BlocksForDate(prefs, nil, "2024-06-08")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestBlocksForDate_LunchCarveOut(t *testing.T) {
	prefs := models.StudyPreferences{
		SchoolStartTime:  "08:30",
		SchoolEndTime:    "15:30",
		StudyDuringLunch: true,
		LunchStart:       "12:30",
		LunchEnd:         "13:00",
	}

	blocks, err := BlocksForDate(prefs, nil, "2024-06-03")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "08:30-12:30", blocks[0].String())
	assert.Equal(t, "13:00-15:30", blocks[1].String())
}

func TestBlocksForDate_LunchIgnoredWhenDisabled(t *testing.T) {
	prefs := models.StudyPreferences{
		SchoolStartTime: "08:30",
		SchoolEndTime:   "15:30",
		LunchStart:      "12:30",
		LunchEnd:        "13:00",
	}

	blocks, err := BlocksForDate(prefs, nil, "2024-06-03")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "08:30-15:30", blocks[0].String())
}

func TestBlocksForDate_EventsOnDate(t *testing.T) {
	events := []models.Event{
		{
			Title:     "Football practice",
			StartTime: time.Date(2024, 6, 8, 16, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 8, 17, 30, 0, 0, time.UTC),
		},
		{
			Title:     "Dentist",
			StartTime: time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 9, 11, 0, 0, 0, time.UTC),
		},
	}

	blocks, err := BlocksForDate(models.StudyPreferences{}, events, "2024-06-08")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "16:00-17:30", blocks[0].String())
}

func TestBlocksForDate_MultiDayEventClipped(t *testing.T) {
	events := []models.Event{
		{
			Title:     "School trip",
			StartTime: time.Date(2024, 6, 7, 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC),
		},
	}

	// The middle day is fully blocked.
	blocks, err := BlocksForDate(models.StudyPreferences{}, events, "2024-06-08")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, TimeOfDay(0), blocks[0].Start)
	assert.Equal(t, TimeOfDay(1440), blocks[0].End)

	// The last day is blocked until noon.
	blocks, err = BlocksForDate(models.StudyPreferences{}, events, "2024-06-09")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "00:00-12:00", blocks[0].String())
}

func TestBlocksForDate_SortedByStart(t *testing.T) {
	prefs := models.StudyPreferences{
		SchoolStartTime: "08:30",
		SchoolEndTime:   "15:30",
	}
	events := []models.Event{
		{
			Title:     "Morning run",
			StartTime: time.Date(2024, 6, 3, 6, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 3, 7, 15, 0, 0, time.UTC),
		},
		{
			Title:     "Club",
			StartTime: time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC),
		},
	}

	blocks, err := BlocksForDate(prefs, events, "2024-06-03")
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i := 1; i < len(blocks); i++ {
		assert.LessOrEqual(t, blocks[i-1].Start, blocks[i].Start)
	}
}
