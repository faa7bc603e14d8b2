package get_reviews

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
