package get_available_slots

import "errors"

var (
	// ErrInvalidRequest - некорректные параметры запроса
	ErrInvalidRequest = errors.New("invalid request")
	// ErrServiceNotFound - услуга не найдена или снята с каталога
	ErrServiceNotFound = errors.New("service not found")
	// ErrInternal - внутренняя ошибка при подборе слотов
	ErrInternal = errors.New("internal error")
)
