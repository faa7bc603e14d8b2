package schedule

import (
	"context"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error
	GetBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
