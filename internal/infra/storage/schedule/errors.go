package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда недельное расписание еще не сохранено
	ErrScheduleNotFound = errors.New("schedule.repository: weekly schedule not found")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("schedule.repository: blocked date not found")

	// ErrDateAlreadyBlocked возвращается при попытке заблокировать уже заблокированную дату
	ErrDateAlreadyBlocked = errors.New("schedule.repository: date is already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
