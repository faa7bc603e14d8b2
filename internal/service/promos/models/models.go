package models

import (
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
)

// Request модели

// CreatePromoRequest запрос на создание промокода
type CreatePromoRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	UsageLimit      int    `json:"usageLimit"`
	Active          *bool  `json:"active,omitempty"`
}

// ToDomain конвертирует запрос в domain модель.
// Промокод по умолчанию активен.
func (r *CreatePromoRequest) ToDomain() *domain.PromoCode {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.PromoCode{
		Code:            r.Code,
		DiscountPercent: r.DiscountPercent,
		UsageLimit:      r.UsageLimit,
		Active:          active,
	}
}

// UpdatePromoRequest запрос на частичное обновление промокода.
// Сам код неизменяем: клиенты могли его уже получить.
type UpdatePromoRequest struct {
	DiscountPercent *int  `json:"discountPercent,omitempty"`
	UsageLimit      *int  `json:"usageLimit,omitempty"`
	Active          *bool `json:"active,omitempty"`
}

// ApplyTo накладывает непустые поля запроса на существующий промокод
func (r *UpdatePromoRequest) ApplyTo(promo *domain.PromoCode) {
	if r.DiscountPercent != nil {
		promo.DiscountPercent = *r.DiscountPercent
	}
	if r.UsageLimit != nil {
		promo.UsageLimit = *r.UsageLimit
	}
	if r.Active != nil {
		promo.Active = *r.Active
	}
}

// ValidatePromoRequest запрос на проверку промокода перед бронированием
type ValidatePromoRequest struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

// Response модели

// PromoResponse ответ с данными промокода
type PromoResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discountPercent"`
	Active          bool      `json:"active"`
	UsageLimit      int       `json:"usageLimit"`
	UsageCount      int       `json:"usageCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PromoListResponse ответ со списком промокодов
type PromoListResponse struct {
	PromoCodes []PromoResponse `json:"promoCodes"`
}

// ValidatePromoResponse результат проверки промокода.
// Для непригодного кода Valid=false, скидка и итоговая цена не заполняются.
type ValidatePromoResponse struct {
	Valid           bool     `json:"valid"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	FinalPrice      *float64 `json:"finalPrice,omitempty"`
}

// Методы конвертации

// FromDomainPromo конвертирует domain модель в DTO
func FromDomainPromo(p *domain.PromoCode) *PromoResponse {
	if p == nil {
		return nil
	}
	return &PromoResponse{
		ID:              p.ID,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		Active:          p.Active,
		UsageLimit:      p.UsageLimit,
		UsageCount:      p.UsageCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainPromoList конвертирует список domain моделей в DTO
func FromDomainPromoList(promos []*domain.PromoCode) *PromoListResponse {
	resp := &PromoListResponse{
		PromoCodes: make([]PromoResponse, 0, len(promos)),
	}
	for _, p := range promos {
		resp.PromoCodes = append(resp.PromoCodes, *FromDomainPromo(p))
	}
	return resp
}
