package settings

import "context"

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetCancellationHours(ctx context.Context) (int, error)
	SaveCancellationHours(ctx context.Context, hours int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
