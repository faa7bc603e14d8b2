package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PromoCode промокод на скидку
type PromoCode struct {
	ID              int64
	Code            string
	DiscountPercent int
	Active          bool
	UsageLimit      int
	UsageCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate проверяет бизнес-инварианты промокода
func (p *PromoCode) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("promo code is required")
	}
	if p.DiscountPercent < MinDiscountPercent || p.DiscountPercent > MaxDiscountPercent {
		return fmt.Errorf("discount percent must be between %d and %d",
			MinDiscountPercent, MaxDiscountPercent)
	}
	if p.UsageLimit < 1 {
		return fmt.Errorf("usage limit must be at least 1")
	}
	if p.UsageCount < 0 || p.UsageCount > p.UsageLimit {
		return fmt.Errorf("usage count must be between 0 and usage limit")
	}
	return nil
}

// IsUsable промокод применим: активен и лимит использований не исчерпан
func (p *PromoCode) IsUsable() bool {
	return p.Active && p.UsageCount < p.UsageLimit
}

// Matches сравнивает код без учета регистра
func (p *PromoCode) Matches(code string) bool {
	return strings.EqualFold(p.Code, code)
}

// DiscountedPrice цена со скидкой, округленная до целого по стандартным правилам
func (p *PromoCode) DiscountedPrice(price float64) float64 {
	return math.Round(price * float64(MaxDiscountPercent-p.DiscountPercent) / float64(MaxDiscountPercent))
}
