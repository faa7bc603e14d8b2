package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NLS-BookingService/internal/service/schedule/models"
)

type fakeRepo struct {
	weekly    domain.WeeklySchedule
	weeklyErr error
	saved     domain.WeeklySchedule
	blocked   []*domain.BlockedDate
	addErr    error
	removeErr error
	nextID    int64
}

func (f *fakeRepo) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	return f.weekly, f.weeklyErr
}

func (f *fakeRepo) SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error {
	f.saved = schedule
	return nil
}

func (f *fakeRepo) GetBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	return f.blocked, nil
}

func (f *fakeRepo) AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.nextID++
	b := &domain.BlockedDate{ID: f.nextID, Date: date, Reason: reason}
	f.blocked = append(f.blocked, b)
	return b, nil
}

func (f *fakeRepo) RemoveBlockedDate(ctx context.Context, id int64) error {
	return f.removeErr
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validUpdateRequest() *models.UpdateScheduleRequest {
	days := make(map[string]models.DayInput, len(domain.WeekdayNames))
	for _, day := range domain.WeekdayNames {
		days[day] = models.DayInput{Enabled: false}
	}
	days["monday"] = models.DayInput{
		Enabled: true,
		Intervals: []models.IntervalInput{
			{Start: "09:00", End: "18:00"},
		},
	}
	return &models.UpdateScheduleRequest{Days: days}
}

func TestGetWeeklySchedule_DefaultFallback(t *testing.T) {
	svc := NewService(&fakeRepo{weeklyErr: scheduleRepo.ErrScheduleNotFound}, noopLogger{})

	resp, err := svc.GetWeeklySchedule(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.True(t, resp.Days["monday"].Enabled)
	assert.False(t, resp.Days["sunday"].Enabled)
	require.Len(t, resp.Days["friday"].Intervals, 2)
	assert.Equal(t, "08:00", resp.Days["friday"].Intervals[0].Start)
	assert.Equal(t, "13:30", resp.Days["friday"].Intervals[1].Start)
}

func TestUpdateWeeklySchedule_Success(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateWeeklySchedule(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.saved)
	assert.True(t, resp.Days["monday"].Enabled)
	assert.Equal(t, "09:00", resp.Days["monday"].Intervals[0].Start)
}

func TestUpdateWeeklySchedule_Invalid(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	t.Run("missing days", func(t *testing.T) {
		req := validUpdateRequest()
		delete(req.Days, "sunday")
		_, err := svc.UpdateWeeklySchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unparsable time", func(t *testing.T) {
		req := validUpdateRequest()
		req.Days["monday"] = models.DayInput{
			Enabled:   true,
			Intervals: []models.IntervalInput{{Start: "nine", End: "18:00"}},
		}
		_, err := svc.UpdateWeeklySchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start after end", func(t *testing.T) {
		req := validUpdateRequest()
		req.Days["monday"] = models.DayInput{
			Enabled:   true,
			Intervals: []models.IntervalInput{{Start: "18:00", End: "09:00"}},
		}
		_, err := svc.UpdateWeeklySchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAddBlockedDate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, noopLogger{})
		reason := "отпуск"
		resp, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
			Date:   "2026-02-14",
			Reason: &reason,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-02-14", resp.Date)
		require.NotNil(t, resp.Reason)
		assert.Equal(t, "отпуск", *resp.Reason)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, noopLogger{})
		_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{Date: "14.02.2026"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, noopLogger{})
		reason := strings.Repeat("a", domain.MaxReasonLength+1)
		_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
			Date:   "2026-02-14",
			Reason: &reason,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("already blocked", func(t *testing.T) {
		svc := NewService(&fakeRepo{addErr: scheduleRepo.ErrDateAlreadyBlocked}, noopLogger{})
		_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{Date: "2026-02-14"})
		assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
	})
}

func TestRemoveBlockedDate_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{removeErr: scheduleRepo.ErrBlockedDateNotFound}, noopLogger{})

	err := svc.RemoveBlockedDate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}
