package reviews

import (
	"context"

	"github.com/m04kA/NLS-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Review, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
