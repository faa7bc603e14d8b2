package create_appointment

// Request параметры создания записи
type Request struct {
	ClientID  string
	ServiceID int64
	Date      string
	StartTime string
	PromoCode *string
}

// Response созданная запись
type Response struct {
	ID              int64   `json:"id"`
	ClientID        string  `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	DiscountCode    *string `json:"discountCode,omitempty"`
	DiscountPercent *int    `json:"discountPercent,omitempty"`
}
