package settings

import (
	"context"
	"fmt"
)

// Верхняя граница срока отмены: неделя до начала записи
const maxCancellationHours = 168

// CancellationPolicyResponse политика отмены записей
type CancellationPolicyResponse struct {
	CancellationHours int `json:"cancellationHours"`
}

// UpdateCancellationPolicyRequest запрос на изменение политики отмены
type UpdateCancellationPolicyRequest struct {
	CancellationHours int `json:"cancellationHours"`
}

// Service сервис настроек салона
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetCancellationPolicy возвращает минимальный срок отмены в часах.
// 0 означает, что отмена возможна в любой момент.
func (s *Service) GetCancellationPolicy(ctx context.Context) (*CancellationPolicyResponse, error) {
	hours, err := s.settingsRepo.GetCancellationHours(ctx)
	if err != nil {
		s.logger.Error("GetCancellationPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCancellationPolicy - repository error: %v", ErrInternal, err)
	}
	return &CancellationPolicyResponse{CancellationHours: hours}, nil
}

// UpdateCancellationPolicy сохраняет минимальный срок отмены
func (s *Service) UpdateCancellationPolicy(ctx context.Context, req *UpdateCancellationPolicyRequest) (*CancellationPolicyResponse, error) {
	if req.CancellationHours < 0 || req.CancellationHours > maxCancellationHours {
		s.logger.Warn("UpdateCancellationPolicy: invalid hours %d", req.CancellationHours)
		return nil, fmt.Errorf("%w: cancellation hours must be between 0 and %d", ErrInvalidInput, maxCancellationHours)
	}

	if err := s.settingsRepo.SaveCancellationHours(ctx, req.CancellationHours); err != nil {
		s.logger.Error("UpdateCancellationPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCancellationPolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCancellationPolicy: set cancellation hours to %d", req.CancellationHours)
	return &CancellationPolicyResponse{CancellationHours: req.CancellationHours}, nil
}
