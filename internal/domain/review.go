package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Review rating limits
const (
	MinReviewRating        = 1
	MaxReviewRating        = 5
	MaxReviewCommentLength = 1000
)

// Review отзыв клиента о завершенной записи.
// ClientName - снимок отображаемого имени на момент отправки отзыва.
type Review struct {
	ID            int64
	AppointmentID int64
	ClientID      string
	ClientName    string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

// Validate проверяет бизнес-инварианты отзыва
func (r *Review) Validate() error {
	if r.AppointmentID <= 0 {
		return fmt.Errorf("review appointment id is required")
	}
	if r.Rating < MinReviewRating || r.Rating > MaxReviewRating {
		return fmt.Errorf("review rating must be between %d and %d", MinReviewRating, MaxReviewRating)
	}
	if utf8.RuneCountInString(r.Comment) > MaxReviewCommentLength {
		return fmt.Errorf("review comment must not exceed %d characters", MaxReviewCommentLength)
	}
	return nil
}
