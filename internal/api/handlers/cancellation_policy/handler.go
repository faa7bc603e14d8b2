package cancellation_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	settingsService "github.com/m04kA/NLS-BookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPolicy      = "некорректная политика отмены"
)

// Handler операции над политикой отмены записей
type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/cancellation-policy
// Публичный: клиент должен видеть условия отмены до записи
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCancellationPolicy(r.Context())
	if err != nil {
		h.logger.Error("GET /cancellation-policy - Failed to get policy: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/cancellation-policy
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req settingsService.UpdateCancellationPolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/cancellation-policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCancellationPolicy(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/cancellation-policy - Invalid policy: hours=%d", req.CancellationHours)
			handlers.RespondBadRequest(w, msgInvalidPolicy)
		default:
			h.logger.Error("PUT /admin/cancellation-policy - Failed to update policy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/cancellation-policy - Policy updated: hours=%d", result.CancellationHours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
