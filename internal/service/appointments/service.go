package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/NLS-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID возвращает запись по ID.
// Клиент может видеть только свою запись, администратор - любую.
func (s *Service) GetByID(ctx context.Context, id int64, clientID string, isAdmin bool) (*models.AppointmentResponse, error) {
	apt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && apt.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%s to appointment id=%d", clientID, id)
		return nil, fmt.Errorf("%w: appointment %d", ErrAccessDenied, id)
	}

	return models.FromDomainAppointment(apt), nil
}

// GetClientAppointments возвращает историю записей клиента
func (s *Service) GetClientAppointments(ctx context.Context, clientID string) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%s", len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись.
// Клиент может отменить только свою подтвержденную запись и только пока
// не истек минимальный срок отмены. Администратор отменяет без ограничений
// по сроку.
func (s *Service) Cancel(ctx context.Context, id int64, clientID string, isAdmin bool) (*models.AppointmentResponse, error) {
	apt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && apt.ClientID != clientID {
		s.logger.Warn("Cancel: access denied for client=%s to appointment id=%d", clientID, id)
		return nil, fmt.Errorf("%w: appointment %d", ErrAccessDenied, id)
	}
	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, apt.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, apt.Status)
	}

	if !isAdmin {
		policy, err := s.cancellationPolicy(ctx)
		if err != nil {
			return nil, err
		}
		if !policy.CanCancel(apt, s.timeProvider.Now()) {
			s.logger.Warn("Cancel: cancellation window passed for appointment id=%d", id)
			return nil, fmt.Errorf("%w: requires at least %d hours before start",
				ErrCancellationWindowPassed, policy.MinLeadHours)
		}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	apt.Status = domain.StatusCancelled
	s.logger.Info("Cancel: cancelled appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// Complete помечает запись выполненной. Только для администратора.
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	apt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !apt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d in status %s cannot be completed", id, apt.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotComplete, apt.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	apt.Status = domain.StatusCompleted
	s.logger.Info("Complete: completed appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("load: appointment id=%d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("load: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}
	return apt, nil
}

func (s *Service) cancellationPolicy(ctx context.Context) (domain.CancellationPolicy, error) {
	hours, err := s.settingsRepo.GetCancellationHours(ctx)
	if err != nil {
		s.logger.Error("cancellationPolicy: repository error: %v", err)
		return domain.CancellationPolicy{}, fmt.Errorf("%w: cancellationPolicy - repository error: %v", ErrInternal, err)
	}
	return domain.CancellationPolicy{MinLeadHours: hours}, nil
}
