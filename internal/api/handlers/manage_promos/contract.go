package manage_promos

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/service/promos/models"
)

type PromoService interface {
	Create(ctx context.Context, req *models.CreatePromoRequest) (*models.PromoResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PromoResponse, error)
	List(ctx context.Context) (*models.PromoListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdatePromoRequest) (*models.PromoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
