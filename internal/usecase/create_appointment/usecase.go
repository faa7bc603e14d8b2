package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/promo"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/service"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// Usecase создание записи на услугу.
// Все проверки занятости повторяются внутри serializable-транзакции:
// список слотов, который видел клиент, к моменту подтверждения мог устареть.
type Usecase struct {
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	promoRepo       PromoRepository
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUsecase(
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	promoRepo PromoRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		promoRepo:       promoRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute создает запись, если слот все еще доступен
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, start, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !date.After(today) {
		return nil, fmt.Errorf("%w: booking is open from tomorrow", ErrDateUnavailable)
	}
	if date.After(today.AddDate(0, 0, domain.DateHorizonDays)) {
		return nil, fmt.Errorf("%w: date is beyond the booking horizon", ErrDateUnavailable)
	}

	var created *domain.Appointment

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		svc, err := u.loadService(ctx, req.ServiceID)
		if err != nil {
			return err
		}
		end := start.AddMinutes(svc.DurationMinutes)

		if err := u.checkDateAvailable(ctx, date); err != nil {
			return err
		}

		weekly, err := u.loadWeeklySchedule(ctx)
		if err != nil {
			return err
		}
		day := weekly.DayFor(date)
		if !day.Enabled {
			return fmt.Errorf("%w: salon is closed on %s", ErrDateUnavailable, domain.DayNameForDate(date))
		}
		if !fitsBusinessHours(day, start, end) {
			return fmt.Errorf("%w: %s-%s on %s", ErrOutsideBusinessHours, start, end, req.Date)
		}

		// Повторная проверка занятости под блокировкой строк дня
		if err := u.checkSlotFree(ctx, date, start, end); err != nil {
			return err
		}

		apt := &domain.Appointment{
			ClientID:    req.ClientID,
			ServiceID:   svc.ID,
			Date:        date,
			StartTime:   start,
			EndTime:     end,
			Status:      domain.StatusConfirmed,
			ServiceName: svc.Name,
			Price:       svc.Price,
		}

		if req.PromoCode != nil {
			if err := u.applyPromo(ctx, *req.PromoCode, apt); err != nil {
				return err
			}
		}

		created, err = u.appointmentRepo.Create(ctx, apt)
		if err != nil {
			u.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: Execute - create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("CreateAppointment: created appointment %d for client %s on %s %s",
		created.ID, created.ClientID, req.Date, created.StartTime)

	return buildResponse(created), nil
}

func (u *Usecase) loadService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceUnavailable, id)
		}
		u.logger.Error("CreateAppointment: failed to load service %d: %v", id, err)
		return nil, fmt.Errorf("%w: Execute - load service: %v", ErrInternal, err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("%w: id %d is inactive", ErrServiceUnavailable, id)
	}
	return svc, nil
}

func (u *Usecase) checkDateAvailable(ctx context.Context, date time.Time) error {
	blocked, err := u.scheduleRepo.IsDateBlocked(ctx, date)
	if err != nil {
		u.logger.Error("CreateAppointment: failed to check blocked date: %v", err)
		return fmt.Errorf("%w: Execute - check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		return fmt.Errorf("%w: date is blocked", ErrDateUnavailable)
	}
	return nil
}

func (u *Usecase) loadWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	weekly, err := u.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return domain.DefaultWeeklySchedule(), nil
		}
		u.logger.Error("CreateAppointment: failed to load weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: Execute - load weekly schedule: %v", ErrInternal, err)
	}
	return weekly, nil
}

func (u *Usecase) checkSlotFree(ctx context.Context, date time.Time, start, end types.TimeOfDay) error {
	appointments, err := u.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		u.logger.Error("CreateAppointment: failed to load appointments: %v", err)
		return fmt.Errorf("%w: Execute - load appointments: %v", ErrInternal, err)
	}
	for _, apt := range appointments {
		if apt.IsActive() && apt.Overlaps(start, end) {
			return fmt.Errorf("%w: overlaps appointment %d (%s-%s)",
				ErrSlotConflict, apt.ID, apt.StartTime, apt.EndTime)
		}
	}
	return nil
}

// applyPromo проверяет и погашает промокод внутри транзакции бронирования.
// Условный инкремент в репозитории гарантирует, что лимит использований
// не будет превышен при конкурентных бронированиях.
func (u *Usecase) applyPromo(ctx context.Context, code string, apt *domain.Appointment) error {
	pc, err := u.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promo.ErrPromoNotFound) {
			return fmt.Errorf("%w: code %q not found", ErrInvalidPromo, code)
		}
		u.logger.Error("CreateAppointment: failed to load promo %q: %v", code, err)
		return fmt.Errorf("%w: Execute - load promo: %v", ErrInternal, err)
	}
	if !pc.IsUsable() {
		return fmt.Errorf("%w: code %q is not usable", ErrInvalidPromo, code)
	}

	if err := u.promoRepo.IncrementUsage(ctx, pc.ID); err != nil {
		if errors.Is(err, promo.ErrPromoExhausted) {
			return fmt.Errorf("%w: code %q is exhausted", ErrInvalidPromo, code)
		}
		u.logger.Error("CreateAppointment: failed to redeem promo %q: %v", code, err)
		return fmt.Errorf("%w: Execute - redeem promo: %v", ErrInternal, err)
	}

	apt.Price = pc.DiscountedPrice(apt.Price)
	apt.DiscountCode = &pc.Code
	apt.DiscountPercent = &pc.DiscountPercent
	return nil
}

func buildResponse(apt *domain.Appointment) *Response {
	return &Response{
		ID:              apt.ID,
		ClientID:        apt.ClientID,
		ServiceID:       apt.ServiceID,
		ServiceName:     apt.ServiceName,
		Date:            apt.Date.Format(domain.DateFormat),
		StartTime:       apt.StartTime.String(),
		EndTime:         apt.EndTime.String(),
		Status:          string(apt.Status),
		Price:           apt.Price,
		DiscountCode:    apt.DiscountCode,
		DiscountPercent: apt.DiscountPercent,
	}
}
