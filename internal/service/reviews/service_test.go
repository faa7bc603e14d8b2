package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/appointment"
	reviewRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/review"
	"github.com/m04kA/NLS-BookingService/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
	nextID  int64
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range f.reviews {
		if existing.AppointmentID == review.AppointmentID {
			return nil, reviewRepo.ErrReviewAlreadyExists
		}
	}
	f.nextID++
	stored := *review
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.reviews = append(f.reviews, &stored)
	return &stored, nil
}

func (f *fakeReviewRepo) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Review, error) {
	for _, r := range f.reviews {
		if r.AppointmentID == appointmentID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, reviewRepo.ErrReviewNotFound
}

func (f *fakeReviewRepo) List(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, r := range f.reviews {
		if r.ClientID == clientID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

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

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Завершенная запись клиента client-1
func seedAppointment(status domain.AppointmentStatus) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {
			ID:       1,
			ClientID: "client-1",
			Date:     time.Date(2026, 1, 8, 0, 0, 0, 0, time.Local),
			Status:   status,
		},
	}}
}

func validRequest() *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		AppointmentID: 1,
		ClientName:    "Maria",
		Rating:        5,
		Comment:       "Отличный сервис",
	}
}

func TestCreate_Success(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewService(reviews, seedAppointment(domain.StatusCompleted), noopLogger{})

	resp, err := svc.Create(context.Background(), "client-1", validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.AppointmentID)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "Отличный сервис", resp.Comment)
}

func TestCreate_NotCompletedAppointment(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusConfirmed, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			svc := NewService(&fakeReviewRepo{}, seedAppointment(status), noopLogger{})

			_, err := svc.Create(context.Background(), "client-1", validRequest())
			assert.ErrorIs(t, err, ErrAppointmentNotCompleted)
		})
	}
}

func TestCreate_StrangerDenied(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, seedAppointment(domain.StatusCompleted), noopLogger{})

	_, err := svc.Create(context.Background(), "client-2", validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_AppointmentNotFound(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, seedAppointment(domain.StatusCompleted), noopLogger{})

	req := validRequest()
	req.AppointmentID = 99

	_, err := svc.Create(context.Background(), "client-1", req)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreate_OnlyOncePerAppointment(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewService(reviews, seedAppointment(domain.StatusCompleted), noopLogger{})

	_, err := svc.Create(context.Background(), "client-1", validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "client-1", validRequest())
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Len(t, reviews.reviews, 1)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, seedAppointment(domain.StatusCompleted), noopLogger{})

	cases := []struct {
		name   string
		mutate func(req *models.CreateReviewRequest)
	}{
		{"rating too low", func(req *models.CreateReviewRequest) { req.Rating = 0 }},
		{"rating too high", func(req *models.CreateReviewRequest) { req.Rating = 6 }},
		{"comment too long", func(req *models.CreateReviewRequest) {
			req.Comment = strings.Repeat("x", domain.MaxReviewCommentLength+1)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := svc.Create(context.Background(), "client-1", req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByClient_FiltersOwnReviews(t *testing.T) {
	reviews := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: 1, AppointmentID: 1, ClientID: "client-1", Rating: 5},
		{ID: 2, AppointmentID: 2, ClientID: "client-2", Rating: 4},
	}}
	svc := NewService(reviews, &fakeAppointmentRepo{}, noopLogger{})

	resp, err := svc.ListByClient(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, int64(1), resp.Reviews[0].ID)
}

func TestList_ReturnsAll(t *testing.T) {
	reviews := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: 1, AppointmentID: 1, ClientID: "client-1", ClientName: "Maria", Rating: 5},
		{ID: 2, AppointmentID: 2, ClientID: "client-2", ClientName: "Anna", Rating: 4},
	}}
	svc := NewService(reviews, &fakeAppointmentRepo{}, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
}
