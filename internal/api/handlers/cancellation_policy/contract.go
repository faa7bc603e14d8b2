package cancellation_policy

import (
	"context"

	settingsService "github.com/m04kA/NLS-BookingService/internal/service/settings"
)

type SettingsService interface {
	GetCancellationPolicy(ctx context.Context) (*settingsService.CancellationPolicyResponse, error)
	UpdateCancellationPolicy(ctx context.Context, req *settingsService.UpdateCancellationPolicyRequest) (*settingsService.CancellationPolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
