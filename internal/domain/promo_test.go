package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		price   float64
		want    float64
	}{
		{"25 percent off 1000", 25, 1000, 750},
		{"100 percent off", 100, 500, 0},
		{"1 percent off", 1, 100, 99},
		{"rounding up", 15, 99, 84},  // 84.15 -> 84
		{"rounding half", 50, 99, 50}, // 49.5 -> 50
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := &PromoCode{Code: "VERANO25", DiscountPercent: tt.percent}
			assert.Equal(t, tt.want, promo.DiscountedPrice(tt.price))
		})
	}
}

func TestPromoCode_IsUsable(t *testing.T) {
	promo := &PromoCode{Code: "VERANO25", DiscountPercent: 25, Active: true, UsageLimit: 10}

	promo.UsageCount = 0
	assert.True(t, promo.IsUsable())

	// Предпоследнее использование еще проходит
	promo.UsageCount = 9
	assert.True(t, promo.IsUsable())

	// Исчерпанный лимит - отказ
	promo.UsageCount = 10
	assert.False(t, promo.IsUsable())

	promo.UsageCount = 0
	promo.Active = false
	assert.False(t, promo.IsUsable())
}

func TestPromoCode_Matches(t *testing.T) {
	promo := &PromoCode{Code: "VERANO25"}

	assert.True(t, promo.Matches("verano25"))
	assert.True(t, promo.Matches("Verano25"))
	assert.True(t, promo.Matches("VERANO25"))
	assert.False(t, promo.Matches("VERANO26"))
}

func TestPromoCode_Validate(t *testing.T) {
	valid := &PromoCode{Code: "X", DiscountPercent: 50, UsageLimit: 1}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&PromoCode{Code: " ", DiscountPercent: 50, UsageLimit: 1}).Validate())
	assert.Error(t, (&PromoCode{Code: "X", DiscountPercent: 0, UsageLimit: 1}).Validate())
	assert.Error(t, (&PromoCode{Code: "X", DiscountPercent: 101, UsageLimit: 1}).Validate())
	assert.Error(t, (&PromoCode{Code: "X", DiscountPercent: 50, UsageLimit: 0}).Validate())
	assert.Error(t, (&PromoCode{Code: "X", DiscountPercent: 50, UsageLimit: 1, UsageCount: 2}).Validate())
}
