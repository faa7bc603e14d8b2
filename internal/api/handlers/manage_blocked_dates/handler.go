package manage_blocked_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	"github.com/m04kA/NLS-BookingService/internal/service/schedule"
	"github.com/m04kA/NLS-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateID      = "некорректный ID заблокированной даты"
	msgInvalidDate        = "некорректная дата"
	msgAlreadyBlocked     = "дата уже заблокирована"
	msgNotFound           = "заблокированная дата не найдена"
)

// Handler администраторские операции над заблокированными датами
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/blocked-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-dates - Returned %d blocked dates", len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/blocked-dates
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, schedule.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-dates - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)
		default:
			h.logger.Error("POST /admin/blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Date blocked: date=%s, id=%d", result.Date, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/blocked-dates/{dateId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	dateID, err := strconv.ParseInt(mux.Vars(r)["dateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-dates/{id} - Invalid date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateID)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), dateID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Not found: id=%d", dateID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /admin/blocked-dates/{id} - Failed to unblock date: id=%d, error=%v", dateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{id} - Date unblocked: id=%d", dateID)
	handlers.RespondNoContent(w)
}
