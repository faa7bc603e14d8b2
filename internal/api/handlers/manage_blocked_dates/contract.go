package manage_blocked_dates

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error)
	AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error)
	RemoveBlockedDate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
