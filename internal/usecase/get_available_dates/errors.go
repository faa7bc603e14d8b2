package get_available_dates

import "errors"

var (
	// ErrInternal - внутренняя ошибка при получении дат
	ErrInternal = errors.New("internal error")
)
