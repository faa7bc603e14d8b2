package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	"github.com/m04kA/NLS-BookingService/internal/api/middleware"
	"github.com/m04kA/NLS-BookingService/internal/service/reviews"
	"github.com/m04kA/NLS-BookingService/internal/service/reviews/models"
)

const (
	msgMissingUserID           = "отсутствует ID пользователя"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidRequest          = "некорректные параметры отзыва"
	msgAppointmentNotFound     = "запись не найдена"
	msgAccessDenied            = "нет доступа к этой записи"
	msgAppointmentNotCompleted = "отзыв можно оставить только на завершенную запись"
	msgAlreadyReviewed         = "отзыв на эту запись уже оставлен"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reviews.ErrAppointmentNotFound):
			h.logger.Warn("POST /reviews - Appointment not found: %v", err)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /reviews - Access denied: client=%s", clientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reviews.ErrAppointmentNotCompleted):
			h.logger.Warn("POST /reviews - Appointment not completed: %v", err)
			handlers.RespondConflict(w, msgAppointmentNotCompleted)

		case errors.Is(err, reviews.ErrAlreadyReviewed):
			h.logger.Warn("POST /reviews - Already reviewed: %v", err)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /reviews - Failed to create review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: id=%d, appointment=%d, client=%s",
		result.ID, result.AppointmentID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
