package get_reviews

import (
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reviews - Failed to get reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reviews - Returned %d reviews", len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
