package manage_promos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-BookingService/internal/api/handlers"
	"github.com/m04kA/NLS-BookingService/internal/service/promos"
	"github.com/m04kA/NLS-BookingService/internal/service/promos/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPromoID     = "некорректный ID промокода"
	msgInvalidPromo       = "некорректные данные промокода"
	msgNotFound           = "промокод не найден"
	msgCodeTaken          = "промокод с таким кодом уже существует"
)

// Handler администраторские операции над промокодами
type Handler struct {
	service PromoService
	logger  Logger
}

func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/promos
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrInvalidInput):
			h.logger.Warn("POST /admin/promos - Invalid promo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPromo)
		case errors.Is(err, promos.ErrPromoCodeTaken):
			h.logger.Warn("POST /admin/promos - Code taken: code=%q", req.Code)
			handlers.RespondConflict(w, msgCodeTaken)
		default:
			h.logger.Error("POST /admin/promos - Failed to create promo: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promos - Promo created: promo_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/promos
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/promos - Failed to list promos: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/promos - Returned %d promos", len(result.PromoCodes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/promos/{promoId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	promoID, ok := h.promoID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), promoID)
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrPromoNotFound):
			h.logger.Warn("GET /admin/promos/{id} - Promo not found: promo_id=%d", promoID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /admin/promos/{id} - Failed to get promo: promo_id=%d, error=%v", promoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/admin/promos/{promoId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	promoID, ok := h.promoID(w, r)
	if !ok {
		return
	}

	var req models.UpdatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/promos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), promoID, &req)
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrPromoNotFound):
			h.logger.Warn("PATCH /admin/promos/{id} - Promo not found: promo_id=%d", promoID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, promos.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/promos/{id} - Invalid promo: promo_id=%d, error=%v", promoID, err)
			handlers.RespondBadRequest(w, msgInvalidPromo)
		default:
			h.logger.Error("PATCH /admin/promos/{id} - Failed to update promo: promo_id=%d, error=%v", promoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/promos/{id} - Promo updated: promo_id=%d", promoID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/promos/{promoId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	promoID, ok := h.promoID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), promoID); err != nil {
		switch {
		case errors.Is(err, promos.ErrPromoNotFound):
			h.logger.Warn("DELETE /admin/promos/{id} - Promo not found: promo_id=%d", promoID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /admin/promos/{id} - Failed to delete promo: promo_id=%d, error=%v", promoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/promos/{id} - Promo deleted: promo_id=%d", promoID)
	handlers.RespondNoContent(w)
}

func (h *Handler) promoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	promoID, err := strconv.ParseInt(mux.Vars(r)["promoId"], 10, 64)
	if err != nil {
		h.logger.Warn("admin/promos - Invalid promo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromoID)
		return 0, false
	}
	return promoID, true
}
