package get_available_dates

// Response ответ со списком доступных дат для записи
type Response struct {
	Dates []string `json:"dates"`
}
