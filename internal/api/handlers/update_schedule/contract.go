package update_schedule

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeeklySchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
