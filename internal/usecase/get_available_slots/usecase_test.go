package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
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
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func mondayOnlySchedule(intervals ...domain.TimeInterval) domain.WeeklySchedule {
	weekly := make(domain.WeeklySchedule)
	for _, day := range domain.WeekdayNames {
		weekly[day] = domain.DaySchedule{Enabled: false}
	}
	weekly["monday"] = domain.DaySchedule{Enabled: true, Intervals: intervals}
	return weekly
}

func newUsecase(scheduleRepo *fakeScheduleRepo, serviceRepo *fakeServiceRepo, appointmentRepo *fakeAppointmentRepo) *Usecase {
	return NewUsecase(scheduleRepo, serviceRepo, appointmentRepo, noopLogger{})
}

func TestExecute_FiltersConflictingSlots(t *testing.T) {
	// Понедельник 08:00-12:00, услуга 60 минут, занято 09:00-10:00.
	// Кандидаты 08:00..11:00; 08:30 и 09:00 пересекаются с записью,
	// 10:00 начинается ровно в момент ее окончания и свободен.
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(8, 0),
		End:   types.NewTimeOfDay(12, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Active: true},
	}}
	appointmentRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:        7,
			StartTime: types.NewTimeOfDay(9, 0),
			EndTime:   types.NewTimeOfDay(10, 0),
			Status:    domain.StatusConfirmed,
		},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly}, serviceRepo, appointmentRepo)

	// 2026-01-05 - понедельник
	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "10:00", "10:30", "11:00"}, resp.Slots)
}

func TestExecute_CancelledAppointmentsDoNotBlock(t *testing.T) {
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(8, 0),
		End:   types.NewTimeOfDay(10, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Active: true},
	}}
	appointmentRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			StartTime: types.NewTimeOfDay(8, 0),
			EndTime:   types.NewTimeOfDay(9, 0),
			Status:    domain.StatusCancelled,
		},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly}, serviceRepo, appointmentRepo)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, resp.Slots)
}

func TestExecute_ServiceMustFitInterval(t *testing.T) {
	// Интервал 13:30-16:00 и услуга 120 минут: последний допустимый
	// старт 14:00 - конец совпадает с границей интервала
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(13, 30),
		End:   types.NewTimeOfDay(16, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Pedicure", DurationMinutes: 120, Active: true},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly}, serviceRepo, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"13:30", "14:00"}, resp.Slots)
}

func TestExecute_ServiceLongerThanInterval(t *testing.T) {
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(8, 0),
		End:   types.NewTimeOfDay(9, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Spa", DurationMinutes: 120, Active: true},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly}, serviceRepo, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(8, 0),
		End:   types.NewTimeOfDay(12, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Active: true},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly}, serviceRepo, &fakeAppointmentRepo{})

	// 2026-01-06 - вторник, выключен в расписании
	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-06", ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_BlockedDateReturnsEmpty(t *testing.T) {
	weekly := mondayOnlySchedule(domain.TimeInterval{
		Start: types.NewTimeOfDay(8, 0),
		End:   types.NewTimeOfDay(12, 0),
	})
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Active: true},
	}}

	uc := newUsecase(&fakeScheduleRepo{weekly: weekly, blocked: true}, serviceRepo, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newUsecase(&fakeScheduleRepo{}, &fakeServiceRepo{}, &fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Active: false},
	}}
	uc := newUsecase(&fakeScheduleRepo{}, serviceRepo, &fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2026-01-05", ServiceID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newUsecase(&fakeScheduleRepo{}, &fakeServiceRepo{}, &fakeAppointmentRepo{})

	for _, date := range []string{"", "05-01-2026", "2026/01/05", "tomorrow"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidRequest, "date %q", date)
	}
}
