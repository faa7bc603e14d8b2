package get_available_slots

// Request параметры подбора свободных слотов
type Request struct {
	Date      string
	ServiceID int64
}

// Response ответ со списком свободных времен начала в формате HH:MM
type Response struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
