package domain

import (
	"fmt"
	"time"
)

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate проверяет бизнес-инварианты услуги.
// Длительность должна быть кратна шагу слота, иначе границы интервалов
// не выравниваются.
func (s *Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if s.DurationMinutes < MinServiceDurationMinutes || s.DurationMinutes > MaxServiceDurationMinutes {
		return fmt.Errorf("service duration must be between %d and %d minutes",
			MinServiceDurationMinutes, MaxServiceDurationMinutes)
	}
	if s.DurationMinutes%SlotGranularityMinutes != 0 {
		return fmt.Errorf("service duration must be a multiple of %d minutes", SlotGranularityMinutes)
	}
	if s.Price < 0 {
		return fmt.Errorf("service price must be non-negative")
	}
	return nil
}
