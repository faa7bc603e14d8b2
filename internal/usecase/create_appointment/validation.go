package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// validateRequest проверяет параметры и возвращает разобранные дату и время начала
func validateRequest(req *Request) (time.Time, types.TimeOfDay, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return time.Time{}, 0, fmt.Errorf("%w: client_id is required", ErrInvalidRequest)
	}
	if req.ServiceID <= 0 {
		return time.Time{}, 0, fmt.Errorf("%w: service_id must be positive", ErrInvalidRequest)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: date must be in format %s", ErrInvalidRequest, domain.DateFormat)
	}

	// Время начала не обязано совпадать с кандидатом из выдачи слотов:
	// достаточно, чтобы услуга поместилась в рабочий интервал.
	start, err := types.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: start_time must be in format HH:MM", ErrInvalidRequest)
	}

	if req.PromoCode != nil && strings.TrimSpace(*req.PromoCode) == "" {
		return time.Time{}, 0, fmt.Errorf("%w: promo_code must not be empty", ErrInvalidRequest)
	}

	return date, start, nil
}

// fitsBusinessHours проверяет, что услуга целиком помещается в один из
// рабочих интервалов дня. Совпадение конца услуги с концом интервала допустимо.
func fitsBusinessHours(day domain.DaySchedule, start, end types.TimeOfDay) bool {
	for _, interval := range day.Intervals {
		if start.Minutes() >= interval.Start.Minutes() && end.Minutes() <= interval.End.Minutes() {
			return true
		}
	}
	return false
}
