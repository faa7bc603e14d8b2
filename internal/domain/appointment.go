package domain

import (
	"time"

	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses допустимые статусы записи
var ValidStatuses = []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled}

// Appointment запись клиента на услугу.
// ServiceName и Price - снимок на момент бронирования: последующие правки
// каталога не меняют уже созданные записи.
type Appointment struct {
	ID        int64
	ClientID  string
	ServiceID int64
	Date      time.Time // дата без времени
	StartTime types.TimeOfDay
	EndTime   types.TimeOfDay
	Status    AppointmentStatus

	// Денормализованные данные услуги
	ServiceName string
	Price       float64

	// Примененный промокод (если был)
	DiscountCode    *string
	DiscountPercent *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive запись учитывается при расчете занятости слотов
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled отменять можно только подтвержденные записи
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeCompleted завершать можно только подтвержденные записи
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// StartAt совмещает дату и время начала записи
func (a *Appointment) StartAt() time.Time {
	return a.StartTime.At(a.Date)
}

// Overlaps проверяет пересечение с полуоткрытым интервалом [start, end).
// Граничащие интервалы (конец одного равен началу другого) не пересекаются.
func (a *Appointment) Overlaps(start, end types.TimeOfDay) bool {
	return a.StartTime.IsBefore(end) && a.EndTime.IsAfter(start)
}
