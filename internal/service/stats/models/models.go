package models

// GetStatsRequest период выборки статистики (границы включительно)
type GetStatsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ServiceStats статистика по одной услуге
type ServiceStats struct {
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Revenue     float64 `json:"revenue"`
}

// StatsResponse сводная статистика за период.
// Выручка считается только по выполненным записям.
type StatsResponse struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Total     int            `json:"total"`
	Confirmed int            `json:"confirmed"`
	Completed int            `json:"completed"`
	Cancelled int            `json:"cancelled"`
	Revenue   float64        `json:"revenue"`
	ByService []ServiceStats `json:"byService"`
}
