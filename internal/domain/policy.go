package domain

import "time"

// CancellationPolicy политика отмены: минимальное число часов до начала записи.
// 0 означает, что отмена возможна всегда.
type CancellationPolicy struct {
	MinLeadHours int
}

// CanCancel можно ли отменить запись в момент now.
// Граница включительна: ровно за MinLeadHours отмена еще разрешена.
func (p CancellationPolicy) CanCancel(apt *Appointment, now time.Time) bool {
	if p.MinLeadHours <= 0 {
		return true
	}
	hoursUntil := apt.StartAt().Sub(now).Hours()
	return hoursUntil >= float64(p.MinLeadHours)
}
