package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/promo"
	"github.com/m04kA/NLS-BookingService/internal/infra/storage/service"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

type fakeScheduleRepo struct {
	weekly  domain.WeeklySchedule
	blocked bool
}

func (f *fakeScheduleRepo) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	return f.weekly, nil
}

func (f *fakeScheduleRepo) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	return f.blocked, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, service.ErrServiceNotFound
	}
	return svc, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	stored := *apt
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

type fakePromoRepo struct {
	promos     map[string]*domain.PromoCode
	increments int
}

func (f *fakePromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	for _, pc := range f.promos {
		if pc.Matches(code) {
			return pc, nil
		}
	}
	return nil, promo.ErrPromoNotFound
}

func (f *fakePromoRepo) IncrementUsage(ctx context.Context, id int64) error {
	for _, pc := range f.promos {
		if pc.ID == id {
			if !pc.IsUsable() {
				return promo.ErrPromoExhausted
			}
			pc.UsageCount++
			f.increments++
			return nil
		}
	}
	return promo.ErrPromoNotFound
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	scheduleRepo    *fakeScheduleRepo
	serviceRepo     *fakeServiceRepo
	appointmentRepo *fakeAppointmentRepo
	promoRepo       *fakePromoRepo
	uc              *Usecase
}

// newFixture собирает usecase поверх расписания по умолчанию и
// одной активной услуги на 60 минут. Текущий момент - среда 2026-01-07.
func newFixture() *fixture {
	f := &fixture{
		scheduleRepo: &fakeScheduleRepo{weekly: domain.DefaultWeeklySchedule()},
		serviceRepo: &fakeServiceRepo{services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Price: 1000, Active: true},
		}},
		appointmentRepo: &fakeAppointmentRepo{},
		promoRepo:       &fakePromoRepo{promos: map[string]*domain.PromoCode{}},
	}
	f.uc = NewUsecase(
		f.scheduleRepo,
		f.serviceRepo,
		f.appointmentRepo,
		f.promoRepo,
		fakeTxManager{},
		&fixedTime{now: time.Date(2026, 1, 7, 10, 0, 0, 0, time.Local)},
		noopLogger{},
	)
	return f
}

func validRequest() *Request {
	// 2026-01-08 - четверг, рабочий день по умолчанию
	return &Request{
		ClientID:  "client-42",
		ServiceID: 1,
		Date:      "2026-01-08",
		StartTime: "09:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "client-42", resp.ClientID)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, float64(1000), resp.Price)
	assert.Nil(t, resp.DiscountCode)
}

func TestExecute_EndOfIntervalBoundary(t *testing.T) {
	// Конец услуги совпадает с концом интервала 08:00-12:00 - допустимо
	f := newFixture()
	req := validRequest()
	req.StartTime = "11:00"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:00", resp.EndTime)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture()

	for _, start := range []string{"07:30", "11:30", "12:00", "16:00"} {
		req := validRequest()
		req.StartTime = start

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours, "start %s", start)
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.appointmentRepo.appointments = []*domain.Appointment{
		{
			ID:        5,
			StartTime: types.NewTimeOfDay(9, 0),
			EndTime:   types.NewTimeOfDay(10, 0),
			Status:    domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Соседний слот, касающийся занятого по границе, свободен
	req := validRequest()
	req.StartTime = "10:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.appointmentRepo.appointments = []*domain.Appointment{
		{
			StartTime: types.NewTimeOfDay(9, 0),
			EndTime:   types.NewTimeOfDay(10, 0),
			Status:    domain.StatusCancelled,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateUnavailable(t *testing.T) {
	t.Run("today and past", func(t *testing.T) {
		f := newFixture()
		for _, date := range []string{"2026-01-07", "2026-01-06"} {
			req := validRequest()
			req.Date = date
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrDateUnavailable, "date %s", date)
		}
	})

	t.Run("beyond horizon", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = "2026-04-08"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("blocked date", func(t *testing.T) {
		f := newFixture()
		f.scheduleRepo.blocked = true
		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("closed weekday", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = "2026-01-10" // суббота
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})
}

func TestExecute_ServiceUnavailable(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ServiceID = 99
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	f.serviceRepo.services[1].Active = false
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestExecute_WithPromoCode(t *testing.T) {
	f := newFixture()
	f.promoRepo.promos["VERANO25"] = &domain.PromoCode{
		ID:              1,
		Code:            "VERANO25",
		DiscountPercent: 25,
		Active:          true,
		UsageLimit:      10,
		UsageCount:      3,
	}

	req := validRequest()
	code := "verano25" // регистр не важен
	req.PromoCode = &code

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, float64(750), resp.Price)
	require.NotNil(t, resp.DiscountCode)
	assert.Equal(t, "VERANO25", *resp.DiscountCode)
	require.NotNil(t, resp.DiscountPercent)
	assert.Equal(t, 25, *resp.DiscountPercent)
	assert.Equal(t, 1, f.promoRepo.increments)
}

func TestExecute_InvalidPromo(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		code := "NOPE"
		req.PromoCode = &code

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPromo)
		assert.Nil(t, f.appointmentRepo.created)
	})

	t.Run("exhausted code", func(t *testing.T) {
		f := newFixture()
		f.promoRepo.promos["FULL"] = &domain.PromoCode{
			ID:              2,
			Code:            "FULL",
			DiscountPercent: 10,
			Active:          true,
			UsageLimit:      5,
			UsageCount:      5,
		}
		req := validRequest()
		code := "FULL"
		req.PromoCode = &code

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPromo)
	})

	t.Run("inactive code", func(t *testing.T) {
		f := newFixture()
		f.promoRepo.promos["OFF"] = &domain.PromoCode{
			ID:              3,
			Code:            "OFF",
			DiscountPercent: 10,
			Active:          false,
			UsageLimit:      5,
		}
		req := validRequest()
		code := "OFF"
		req.PromoCode = &code

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPromo)
	})
}

func TestExecute_IntervalOffHalfHourGrid(t *testing.T) {
	// Интервал 09:15-12:00: генератор слотов предлагает 09:15, 09:45 и т.д.,
	// и такие времена должны быть бронируемыми.
	f := newFixture()
	f.scheduleRepo.weekly["thursday"] = domain.DaySchedule{
		Enabled: true,
		Intervals: []domain.TimeInterval{
			{Start: types.NewTimeOfDay(9, 15), End: types.NewTimeOfDay(12, 0)},
		},
	}

	req := validRequest()
	req.StartTime = "09:15"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:15", resp.StartTime)
	assert.Equal(t, "10:15", resp.EndTime)
}

func TestExecute_InvalidRequest(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty client", func(req *Request) { req.ClientID = "  " }},
		{"bad service id", func(req *Request) { req.ServiceID = 0 }},
		{"bad date", func(req *Request) { req.Date = "08.01.2026" }},
		{"bad time", func(req *Request) { req.StartTime = "9am" }},
		{"empty promo", func(req *Request) { code := " "; req.PromoCode = &code }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}
