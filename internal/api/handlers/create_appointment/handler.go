package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	"github.com/m04kA/NLS-BookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/NLS-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequest       = "некорректные параметры записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgServiceUnavailable   = "услуга недоступна"
	msgDateUnavailable      = "в выбранную дату запись невозможна"
	msgOutsideBusinessHours = "выбранное время вне рабочих часов"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgInvalidPromo         = "промокод недействителен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidRequest):
			h.logger.Warn("POST /appointments - Invalid request: client=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createAppointment.ErrServiceUnavailable):
			h.logger.Warn("POST /appointments - Service unavailable: client=%s, service_id=%d", clientID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceUnavailable)

		case errors.Is(err, createAppointment.ErrDateUnavailable):
			h.logger.Warn("POST /appointments - Date unavailable: client=%s, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: client=%s, date=%s, time=%s",
				clientID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: client=%s, date=%s, time=%s",
				clientID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrInvalidPromo):
			h.logger.Warn("POST /appointments - Invalid promo: client=%s", clientID)
			handlers.RespondBadRequest(w, msgInvalidPromo)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client=%s, date=%s %s",
		result.ID, clientID, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
