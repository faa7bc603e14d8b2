package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// WeekdayNames канонические имена дней недели в порядке time.Weekday (воскресенье = 0)
var WeekdayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// DayNameForDate возвращает каноническое имя дня недели для даты
func DayNameForDate(date time.Time) string {
	return WeekdayNames[int(date.Weekday())]
}

// TimeInterval открытый интервал рабочего времени [Start, End)
type TimeInterval struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// Validate проверяет инвариант Start < End и суточный диапазон границ
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("interval start: %w", err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("interval end: %w", err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("interval start %s must be before end %s", i.Start, i.End)
	}
	return nil
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Enabled   bool
	Intervals []TimeInterval
}

// WeeklySchedule недельное расписание: ровно 7 канонических дней
type WeeklySchedule map[string]DaySchedule

// DefaultWeeklySchedule возвращает расписание по умолчанию:
// пн-пт открыто 08:00-12:00 и 13:30-16:00, сб-вс закрыто
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(WeekdayNames))
	openIntervals := []TimeInterval{
		{Start: types.NewTimeOfDay(8, 0), End: types.NewTimeOfDay(12, 0)},
		{Start: types.NewTimeOfDay(13, 30), End: types.NewTimeOfDay(16, 0)},
	}

	for i, day := range WeekdayNames {
		workday := i >= 1 && i <= 5
		ds := DaySchedule{Enabled: workday}
		if workday {
			ds.Intervals = make([]TimeInterval, len(openIntervals))
			copy(ds.Intervals, openIntervals)
		}
		schedule[day] = ds
	}
	return schedule
}

// Validate проверяет, что расписание содержит ровно 7 канонических дней
// и все интервалы корректны
func (s WeeklySchedule) Validate() error {
	if len(s) != len(WeekdayNames) {
		return fmt.Errorf("schedule must contain exactly %d days, got %d", len(WeekdayNames), len(s))
	}
	for _, day := range WeekdayNames {
		ds, ok := s[day]
		if !ok {
			return fmt.Errorf("schedule is missing day %q", day)
		}
		for _, interval := range ds.Intervals {
			if err := interval.Validate(); err != nil {
				return fmt.Errorf("day %q: %w", day, err)
			}
		}
	}
	return nil
}

// DayFor возвращает расписание на день недели указанной даты.
// Отсутствующий день трактуется как выходной.
func (s WeeklySchedule) DayFor(date time.Time) DaySchedule {
	ds, ok := s[DayNameForDate(date)]
	if !ok {
		return DaySchedule{Enabled: false}
	}
	return ds
}

// BlockedDate заблокированная календарная дата (отпуск, выходной мастера)
type BlockedDate struct {
	ID        int64
	Date      time.Time // дата без времени
	Reason    *string
	CreatedAt time.Time
}
