package get_stats

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/stats/models"
)

type StatsService interface {
	GetStats(ctx context.Context, req *models.GetStatsRequest) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
