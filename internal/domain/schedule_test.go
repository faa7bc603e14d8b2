package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/pkg/types"
)

func TestDefaultWeeklySchedule(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.NoError(t, schedule.Validate())
	require.Len(t, schedule, 7)

	assert.False(t, schedule["sunday"].Enabled)
	assert.False(t, schedule["saturday"].Enabled)

	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		ds := schedule[day]
		require.True(t, ds.Enabled, day)
		require.Len(t, ds.Intervals, 2, day)
		assert.Equal(t, "08:00", ds.Intervals[0].Start.String())
		assert.Equal(t, "12:00", ds.Intervals[0].End.String())
		assert.Equal(t, "13:30", ds.Intervals[1].Start.String())
		assert.Equal(t, "16:00", ds.Intervals[1].End.String())
	}
}

func TestWeeklySchedule_Validate(t *testing.T) {
	t.Run("missing day", func(t *testing.T) {
		schedule := DefaultWeeklySchedule()
		delete(schedule, "wednesday")
		assert.Error(t, schedule.Validate())
	})

	t.Run("unknown day replaces canonical", func(t *testing.T) {
		schedule := DefaultWeeklySchedule()
		schedule["someday"] = schedule["monday"]
		delete(schedule, "monday")
		assert.Error(t, schedule.Validate())
	})

	t.Run("inverted interval", func(t *testing.T) {
		schedule := DefaultWeeklySchedule()
		schedule["monday"] = DaySchedule{
			Enabled: true,
			Intervals: []TimeInterval{
				{Start: types.NewTimeOfDay(12, 0), End: types.NewTimeOfDay(8, 0)},
			},
		}
		assert.Error(t, schedule.Validate())
	})

	t.Run("zero-length interval", func(t *testing.T) {
		schedule := DefaultWeeklySchedule()
		schedule["monday"] = DaySchedule{
			Enabled: true,
			Intervals: []TimeInterval{
				{Start: types.NewTimeOfDay(8, 0), End: types.NewTimeOfDay(8, 0)},
			},
		}
		assert.Error(t, schedule.Validate())
	})
}

func TestWeeklySchedule_DayFor(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Monday, monday.Weekday())
	assert.True(t, schedule.DayFor(monday).Enabled)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())
	assert.False(t, schedule.DayFor(sunday).Enabled)
}

func TestAppointment_Overlaps(t *testing.T) {
	apt := &Appointment{
		StartTime: types.NewTimeOfDay(9, 0),
		EndTime:   types.NewTimeOfDay(10, 0),
		Status:    StatusConfirmed,
	}

	// Реальное пересечение
	assert.True(t, apt.Overlaps(types.NewTimeOfDay(9, 30), types.NewTimeOfDay(10, 30)))
	assert.True(t, apt.Overlaps(types.NewTimeOfDay(8, 30), types.NewTimeOfDay(9, 30)))
	assert.True(t, apt.Overlaps(types.NewTimeOfDay(8, 0), types.NewTimeOfDay(11, 0)))

	// Граничащие интервалы не пересекаются (полуоткрытые)
	assert.False(t, apt.Overlaps(types.NewTimeOfDay(10, 0), types.NewTimeOfDay(11, 0)))
	assert.False(t, apt.Overlaps(types.NewTimeOfDay(8, 0), types.NewTimeOfDay(9, 0)))
}
