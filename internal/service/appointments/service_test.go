package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *apt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByClientID(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, apt := range f.appointments {
		if apt.ClientID == clientID {
			copied := *apt
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	apt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	apt.Status = status
	return nil
}

type fakeSettingsRepo struct {
	hours int
}

func (f *fakeSettingsRepo) GetCancellationHours(ctx context.Context) (int, error) {
	return f.hours, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Запись клиента client-1 на 2026-01-08 10:00
func seedAppointment(status domain.AppointmentStatus) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {
			ID:        1,
			ClientID:  "client-1",
			ServiceID: 2,
			Date:      time.Date(2026, 1, 8, 0, 0, 0, 0, time.Local),
			StartTime: types.NewTimeOfDay(10, 0),
			EndTime:   types.NewTimeOfDay(11, 0),
			Status:    status,
		},
	}}
}

func newService(repo *fakeAppointmentRepo, hours int, now time.Time) *Service {
	return NewService(repo, &fakeSettingsRepo{hours: hours}, &fixedTime{now: now}, noopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	repo := seedAppointment(domain.StatusConfirmed)
	svc := newService(repo, 0, time.Now())

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, "client-1", false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, "client-2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin sees any", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, "admin-1", true)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, "client-1", false)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel_Policy(t *testing.T) {
	start := time.Date(2026, 1, 8, 10, 0, 0, 0, time.Local)

	t.Run("exactly at lead boundary allowed", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 24, start.Add(-24*time.Hour))

		resp, err := svc.Cancel(context.Background(), 1, "client-1", false)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("inside window rejected", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 24, start.Add(-23*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, "client-1", false)
		assert.ErrorIs(t, err, ErrCancellationWindowPassed)
		assert.Equal(t, domain.StatusConfirmed, repo.appointments[1].Status)
	})

	t.Run("zero lead hours always allowed", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 0, start.Add(-time.Minute))

		_, err := svc.Cancel(context.Background(), 1, "client-1", false)
		assert.NoError(t, err)
	})

	t.Run("admin bypasses window", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 24, start.Add(-time.Hour))

		_, err := svc.Cancel(context.Background(), 1, "admin-1", true)
		assert.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 0, start.Add(-48*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, "client-2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := seedAppointment(domain.StatusCancelled)
		svc := newService(repo, 0, start.Add(-48*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, "client-1", false)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		repo := seedAppointment(domain.StatusCompleted)
		svc := newService(repo, 0, start.Add(-48*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, "client-1", false)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := seedAppointment(domain.StatusConfirmed)
		svc := newService(repo, 0, time.Now())

		resp, err := svc.Complete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("cancelled cannot be completed", func(t *testing.T) {
		repo := seedAppointment(domain.StatusCancelled)
		svc := newService(repo, 0, time.Now())

		_, err := svc.Complete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}

func TestGetClientAppointments(t *testing.T) {
	repo := seedAppointment(domain.StatusConfirmed)
	repo.appointments[2] = &domain.Appointment{
		ID:       2,
		ClientID: "client-2",
		Status:   domain.StatusConfirmed,
	}
	svc := newService(repo, 0, time.Now())

	resp, err := svc.GetClientAppointments(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "client-1", resp.Appointments[0].ClientID)
}
