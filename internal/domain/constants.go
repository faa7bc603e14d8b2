package domain

// Default slot and date search parameters
const (
	// SlotGranularityMinutes фиксированный шаг генерации слотов
	SlotGranularityMinutes = 30

	// DateHorizonDays горизонт поиска доступных дат (дней вперед)
	DateHorizonDays = 60

	// DateTargetCount максимум дат, возвращаемых селектором
	DateTargetCount = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = SlotGranularityMinutes
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxDiscountPercent        = 100
	MinDiscountPercent        = 1
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
