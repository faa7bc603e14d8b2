package reviews

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается при попытке оставить отзыв на чужую запись
	ErrAccessDenied = errors.New("access denied")

	// ErrAppointmentNotCompleted возвращается для отзыва на незавершенную запись
	ErrAppointmentNotCompleted = errors.New("appointment is not completed")

	// ErrAlreadyReviewed возвращается при повторном отзыве на ту же запись
	ErrAlreadyReviewed = errors.New("appointment already reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
