package get_client_reviews

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByClient(ctx context.Context, clientID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
