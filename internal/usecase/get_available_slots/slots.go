package get_available_slots

import (
	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/pkg/types"
)

// generateCandidates строит кандидатные времена начала для дня с шагом сетки.
// Услуга должна целиком помещаться в рабочий интервал; совпадение конца
// услуги с концом интервала допустимо.
func generateCandidates(day domain.DaySchedule, durationMinutes int) []types.TimeOfDay {
	if !day.Enabled {
		return nil
	}

	var candidates []types.TimeOfDay
	for _, interval := range day.Intervals {
		for cursor := interval.Start; cursor.AddMinutes(durationMinutes).Minutes() <= interval.End.Minutes(); cursor = cursor.AddMinutes(domain.SlotGranularityMinutes) {
			candidates = append(candidates, cursor)
		}
	}
	return candidates
}

// filterConflicts отбрасывает кандидатов, пересекающихся с активными записями.
// Интервалы полуоткрытые: запись, заканчивающаяся в 10:00, не мешает
// кандидату, начинающемуся в 10:00.
func filterConflicts(candidates []types.TimeOfDay, durationMinutes int, appointments []*domain.Appointment) []types.TimeOfDay {
	free := make([]types.TimeOfDay, 0, len(candidates))

	for _, start := range candidates {
		end := start.AddMinutes(durationMinutes)
		conflict := false
		for _, apt := range appointments {
			if !apt.IsActive() {
				continue
			}
			if apt.Overlaps(start, end) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, start)
		}
	}

	return free
}
