package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	hours int
}

func (f *fakeRepo) GetCancellationHours(ctx context.Context) (int, error) {
	return f.hours, nil
}

func (f *fakeRepo) SaveCancellationHours(ctx context.Context, hours int) error {
	f.hours = hours
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestCancellationPolicy(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetCancellationPolicy(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.CancellationHours)

	updated, err := svc.UpdateCancellationPolicy(context.Background(), &UpdateCancellationPolicyRequest{
		CancellationHours: 24,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, updated.CancellationHours)
	assert.Equal(t, 24, repo.hours)
}

func TestUpdateCancellationPolicy_Invalid(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	for _, hours := range []int{-1, maxCancellationHours + 1} {
		_, err := svc.UpdateCancellationPolicy(context.Background(), &UpdateCancellationPolicyRequest{
			CancellationHours: hours,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
