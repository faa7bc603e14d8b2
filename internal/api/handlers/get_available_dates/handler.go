package get_available_dates

import (
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /available-dates - Failed to get available dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-dates - Returned %d dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
