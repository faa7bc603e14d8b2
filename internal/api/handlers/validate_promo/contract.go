package validate_promo

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/promos/models"
)

type PromoService interface {
	Validate(ctx context.Context, req *models.ValidatePromoRequest) (*models.ValidatePromoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
