package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NLS-BookingService/pkg/types"
)

func TestCancellationPolicy_CanCancel(t *testing.T) {
	apt := &Appointment{
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
		StartTime: types.NewTimeOfDay(10, 0),
		Status:    StatusConfirmed,
	}
	start := apt.StartAt()

	t.Run("zero lead hours always cancellable", func(t *testing.T) {
		policy := CancellationPolicy{MinLeadHours: 0}
		assert.True(t, policy.CanCancel(apt, start.Add(-time.Minute)))
		assert.True(t, policy.CanCancel(apt, start.Add(time.Hour)))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		policy := CancellationPolicy{MinLeadHours: 24}

		// Ровно за 24 часа - можно
		assert.True(t, policy.CanCancel(apt, start.Add(-24*time.Hour)))
		// На минуту позже - нельзя
		assert.False(t, policy.CanCancel(apt, start.Add(-24*time.Hour+time.Minute)))
		// Задолго до - можно
		assert.True(t, policy.CanCancel(apt, start.Add(-48*time.Hour)))
	})
}
