package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	"github.com/m04kA/NLS-BookingService/internal/service/stats"
	"github.com/m04kA/NLS-BookingService/internal/service/stats/models"
)

const msgInvalidPeriod = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.GetStatsRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	result, err := h.service.GetStats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidInput):
			h.logger.Warn("GET /admin/stats - Invalid period: from=%q, to=%q", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /admin/stats - Failed to get stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved: period=%s..%s, total=%d", req.From, req.To, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
