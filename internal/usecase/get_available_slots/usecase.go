package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/service"
)

// Usecase подбор свободных слотов на дату под конкретную услугу
type Usecase struct {
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewUsecase(
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Usecase {
	return &Usecase{
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает свободные времена начала услуги на дату.
// Для закрытого или заблокированного дня возвращается пустой список,
// а не ошибка: клиенту просто нечего выбирать.
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		u.logger.Error("GetAvailableSlots: failed to load service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - load service: %v", ErrInternal, err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("%w: id %d is inactive", ErrServiceNotFound, req.ServiceID)
	}

	blocked, err := u.scheduleRepo.IsDateBlocked(ctx, date)
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to check blocked date %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: Execute - check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		return &Response{Date: req.Date, Slots: []string{}}, nil
	}

	weekly, err := u.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			weekly = domain.DefaultWeeklySchedule()
		} else {
			u.logger.Error("GetAvailableSlots: failed to load weekly schedule: %v", err)
			return nil, fmt.Errorf("%w: Execute - load weekly schedule: %v", ErrInternal, err)
		}
	}

	day := weekly.DayFor(date)
	candidates := generateCandidates(day, svc.DurationMinutes)
	if len(candidates) == 0 {
		return &Response{Date: req.Date, Slots: []string{}}, nil
	}

	appointments, err := u.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to load appointments for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: Execute - load appointments: %v", ErrInternal, err)
	}

	free := filterConflicts(candidates, svc.DurationMinutes, appointments)

	slots := make([]string, 0, len(free))
	for _, slot := range free {
		slots = append(slots, slot.String())
	}

	u.logger.Info("GetAvailableSlots: date=%s service=%d candidates=%d free=%d",
		req.Date, req.ServiceID, len(candidates), len(slots))

	return &Response{Date: req.Date, Slots: slots}, nil
}
