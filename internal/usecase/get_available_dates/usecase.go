package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
)

// Usecase подбор доступных дат для записи
type Usecase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUsecase(scheduleRepo ScheduleRepository, timeProvider TimeProvider, logger Logger) *Usecase {
	return &Usecase{
		scheduleRepo: scheduleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает ближайшие даты, в которые салон принимает записи.
// Перебор начинается с завтрашнего дня и идёт вперёд не дальше горизонта
// планирования; в выдачу попадают дни с включённым расписанием, не
// заблокированные администратором.
func (u *Usecase) Execute(ctx context.Context) (*Response, error) {
	weekly, err := u.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			weekly = domain.DefaultWeeklySchedule()
		} else {
			u.logger.Error("GetAvailableDates: failed to load weekly schedule: %v", err)
			return nil, fmt.Errorf("%w: Execute - load weekly schedule: %v", ErrInternal, err)
		}
	}

	blocked, err := u.scheduleRepo.GetBlockedDates(ctx)
	if err != nil {
		u.logger.Error("GetAvailableDates: failed to load blocked dates: %v", err)
		return nil, fmt.Errorf("%w: Execute - load blocked dates: %v", ErrInternal, err)
	}

	blockedSet := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.Date.Format(domain.DateFormat)] = struct{}{}
	}

	dates := collectAvailableDates(u.timeProvider.Now(), weekly, blockedSet)

	u.logger.Info("GetAvailableDates: found %d available dates", len(dates))

	return &Response{Dates: dates}, nil
}

// collectAvailableDates перебирает дни начиная с завтрашнего в пределах
// горизонта и останавливается, как только набрано целевое количество дат.
func collectAvailableDates(now time.Time, weekly domain.WeeklySchedule, blockedSet map[string]struct{}) []string {
	dates := make([]string, 0, domain.DateTargetCount)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for offset := 1; offset <= domain.DateHorizonDays; offset++ {
		date := today.AddDate(0, 0, offset)

		if !weekly.DayFor(date).Enabled {
			continue
		}

		key := date.Format(domain.DateFormat)
		if _, isBlocked := blockedSet[key]; isBlocked {
			continue
		}

		dates = append(dates, key)
		if len(dates) >= domain.DateTargetCount {
			break
		}
	}

	return dates
}
