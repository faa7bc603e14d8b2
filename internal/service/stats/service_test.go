package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/service/stats/models"
)

type fakeRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGetStats(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ServiceID: 1, ServiceName: "Manicure", Status: domain.StatusCompleted, Price: 1000},
		{ServiceID: 1, ServiceName: "Manicure", Status: domain.StatusCompleted, Price: 750},
		{ServiceID: 1, ServiceName: "Manicure", Status: domain.StatusConfirmed, Price: 1000},
		{ServiceID: 2, ServiceName: "Pedicure", Status: domain.StatusCancelled, Price: 1500},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetStats(context.Background(), &models.GetStatsRequest{
		From: "2026-01-01",
		To:   "2026-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 2, resp.Completed)
	assert.Equal(t, 1, resp.Cancelled)
	// выручка только по выполненным
	assert.Equal(t, float64(1750), resp.Revenue)

	require.Len(t, resp.ByService, 2)
	assert.Equal(t, "Manicure", resp.ByService[0].ServiceName)
	assert.Equal(t, 3, resp.ByService[0].Total)
	assert.Equal(t, 2, resp.ByService[0].Completed)
	assert.Equal(t, float64(1750), resp.ByService[0].Revenue)
	assert.Equal(t, "Pedicure", resp.ByService[1].ServiceName)
	assert.Zero(t, resp.ByService[1].Revenue)
}

func TestGetStats_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	cases := []models.GetStatsRequest{
		{From: "bad", To: "2026-01-31"},
		{From: "2026-01-01", To: "bad"},
		{From: "2026-02-01", To: "2026-01-01"},
	}
	for _, req := range cases {
		_, err := svc.GetStats(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
