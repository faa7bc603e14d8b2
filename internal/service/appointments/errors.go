package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда клиент обращается к чужой записи
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не в подходящем статусе для отмены
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCancellationWindowPassed возвращается, когда до начала записи
	// осталось меньше минимального срока отмены
	ErrCancellationWindowPassed = errors.New("cancellation window has passed")

	// ErrCannotComplete возвращается, когда запись не в подходящем статусе для завершения
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
