package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NLS-BookingService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием салона и заблокированными датами
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeeklySchedule возвращает недельное расписание.
// Если администратор еще ничего не сохранял, возвращается расписание
// по умолчанию.
func (s *Service) GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	weekly, err := s.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetWeeklySchedule: no stored schedule, returning default")
			return models.FromDomainSchedule(domain.DefaultWeeklySchedule()), nil
		}
		s.logger.Error("GetWeeklySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSchedule(weekly), nil
}

// UpdateWeeklySchedule сохраняет недельное расписание целиком.
// Документ валидируется как единое целое: все 7 дней, корректные интервалы.
func (s *Service) UpdateWeeklySchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	weekly, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateWeeklySchedule: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := weekly.Validate(); err != nil {
		s.logger.Warn("UpdateWeeklySchedule: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.SaveWeeklySchedule(ctx, weekly); err != nil {
		s.logger.Error("UpdateWeeklySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklySchedule: schedule saved")
	return models.FromDomainSchedule(weekly), nil
}

// ListBlockedDates возвращает все заблокированные даты
func (s *Service) ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	dates, err := s.scheduleRepo.GetBlockedDates(ctx)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedDateList(dates), nil
}

// AddBlockedDate блокирует дату для записи
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		s.logger.Warn("AddBlockedDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	blocked, err := s.scheduleRepo.AddBlockedDate(ctx, date, req.Reason)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("AddBlockedDate: date %s is already blocked", req.Date)
			return nil, fmt.Errorf("%w: %s", ErrDateAlreadyBlocked, req.Date)
		}
		s.logger.Error("AddBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: blocked date %s (id=%d)", req.Date, blocked.ID)
	return models.FromDomainBlockedDate(blocked), nil
}

// RemoveBlockedDate снимает блокировку даты
func (s *Service) RemoveBlockedDate(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.RemoveBlockedDate(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: blocked date id=%d not found", id)
			return fmt.Errorf("%w: id %d", ErrBlockedDateNotFound, id)
		}
		s.logger.Error("RemoveBlockedDate: repository error: %v", err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlockedDate: unblocked date id=%d", id)
	return nil
}
