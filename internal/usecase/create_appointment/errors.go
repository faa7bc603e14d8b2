package create_appointment

import "errors"

var (
	// ErrInvalidRequest - некорректные параметры запроса
	ErrInvalidRequest = errors.New("invalid request")
	// ErrServiceUnavailable - услуга не найдена или снята с каталога
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrDateUnavailable - в этот день салон не принимает записи
	ErrDateUnavailable = errors.New("date unavailable")
	// ErrOutsideBusinessHours - услуга не помещается в рабочие интервалы дня
	ErrOutsideBusinessHours = errors.New("outside business hours")
	// ErrSlotConflict - слот уже занят другой записью
	ErrSlotConflict = errors.New("slot conflict")
	// ErrInvalidPromo - промокод не найден, неактивен или исчерпан
	ErrInvalidPromo = errors.New("invalid promo code")
	// ErrInternal - внутренняя ошибка при создании записи
	ErrInternal = errors.New("internal error")
)
