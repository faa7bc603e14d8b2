package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/service"
	"github.com/m04kA/NLS-BookingService/internal/service/catalog/models"
	"github.com/m04kA/NLS-BookingService/pkg/ptr"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{services: make(map[int64]*domain.Service)}
}

func (f *fakeRepo) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	stored := *svc
	stored.ID = f.nextID
	f.services[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, svc := range f.services {
		if onlyActive && !svc.Active {
			continue
		}
		copied := *svc
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, svc *domain.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	stored := *svc
	f.services[svc.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	t.Run("success with default active", func(t *testing.T) {
		resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
			Name:            "Manicure",
			DurationMinutes: 60,
			Price:           1000,
		})
		require.NoError(t, err)
		assert.True(t, resp.Active)
		assert.NotZero(t, resp.ID)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
			Name:            "Quick fix",
			DurationMinutes: 45,
			Price:           500,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
			Name:            "Manicure",
			DurationMinutes: 60,
			Price:           -1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList_OnlyActive(t *testing.T) {
	repo := newFakeRepo()
	repo.services[1] = &domain.Service{ID: 1, Name: "Active", DurationMinutes: 60, Active: true}
	repo.services[2] = &domain.Service{ID: 2, Name: "Hidden", DurationMinutes: 60, Active: false}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Active", resp.Services[0].Name)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all.Services, 2)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	repo.services[1] = &domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60, Price: 1000, Active: true}
	svc := NewService(repo, noopLogger{})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
			Price: ptr.Ptr(1200.0),
		})
		require.NoError(t, err)
		assert.Equal(t, float64(1200), resp.Price)
		assert.Equal(t, "Manicure", resp.Name)
		assert.Equal(t, 60, resp.DurationMinutes)
	})

	t.Run("invalid patch rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
			DurationMinutes: ptr.Ptr(50),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.services[1] = &domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60, Active: true}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrServiceNotFound)
}
