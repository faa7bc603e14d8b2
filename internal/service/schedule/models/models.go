package models

import (
	"fmt"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// Request модели

// IntervalInput рабочий интервал в формате HH:MM
type IntervalInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayInput расписание одного дня недели
type DayInput struct {
	Enabled   bool            `json:"enabled"`
	Intervals []IntervalInput `json:"intervals"`
}

// UpdateScheduleRequest полное недельное расписание: сохраняется целиком,
// частичные правки по дням не поддерживаются
type UpdateScheduleRequest struct {
	Days map[string]DayInput `json:"days"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateScheduleRequest) ToDomain() (domain.WeeklySchedule, error) {
	weekly := make(domain.WeeklySchedule, len(r.Days))
	for day, input := range r.Days {
		intervals := make([]domain.TimeInterval, 0, len(input.Intervals))
		for _, in := range input.Intervals {
			start, err := types.ParseTimeOfDay(in.Start)
			if err != nil {
				return nil, fmt.Errorf("day %q: invalid interval start %q", day, in.Start)
			}
			end, err := types.ParseTimeOfDay(in.End)
			if err != nil {
				return nil, fmt.Errorf("day %q: invalid interval end %q", day, in.End)
			}
			intervals = append(intervals, domain.TimeInterval{Start: start, End: end})
		}
		weekly[day] = domain.DaySchedule{Enabled: input.Enabled, Intervals: intervals}
	}
	return weekly, nil
}

// AddBlockedDateRequest запрос на блокировку даты
type AddBlockedDateRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// IntervalResponse рабочий интервал в формате HH:MM
type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayResponse расписание одного дня недели
type DayResponse struct {
	Enabled   bool               `json:"enabled"`
	Intervals []IntervalResponse `json:"intervals"`
}

// WeeklyScheduleResponse недельное расписание
type WeeklyScheduleResponse struct {
	Days map[string]DayResponse `json:"days"`
}

// BlockedDateResponse заблокированная дата
type BlockedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(weekly domain.WeeklySchedule) *WeeklyScheduleResponse {
	days := make(map[string]DayResponse, len(weekly))
	for day, ds := range weekly {
		intervals := make([]IntervalResponse, 0, len(ds.Intervals))
		for _, in := range ds.Intervals {
			intervals = append(intervals, IntervalResponse{
				Start: in.Start.String(),
				End:   in.End.String(),
			})
		}
		days[day] = DayResponse{Enabled: ds.Enabled, Intervals: intervals}
	}
	return &WeeklyScheduleResponse{Days: days}
}

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:     b.ID,
		Date:   b.Date.Format(domain.DateFormat),
		Reason: b.Reason,
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в DTO
func FromDomainBlockedDateList(dates []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{
		BlockedDates: make([]BlockedDateResponse, 0, len(dates)),
	}
	for _, b := range dates {
		resp.BlockedDates = append(resp.BlockedDates, *FromDomainBlockedDate(b))
	}
	return resp
}
