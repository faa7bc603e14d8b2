package create_appointment

import (
	createAppointment "github.com/m04kA/NLS-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	PromoCode *string `json:"promoCode,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Идентификатор клиента приходит из контекста аутентификации, а не из тела.
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID string) *createAppointment.Request {
	return &createAppointment.Request{
		ClientID:  clientID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		StartTime: r.StartTime,
		PromoCode: r.PromoCode,
	}
}
