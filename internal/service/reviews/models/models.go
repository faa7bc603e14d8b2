package models

import (
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва.
// ClientName - отображаемое имя, сохраняется снимком вместе с отзывом.
type CreateReviewRequest struct {
	AppointmentID int64  `json:"appointmentId"`
	ClientName    string `json:"clientName"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateReviewRequest) ToDomain(clientID string) *domain.Review {
	return &domain.Review{
		AppointmentID: r.AppointmentID,
		ClientID:      clientID,
		ClientName:    r.ClientName,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	ClientName    string    `json:"clientName"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		ClientName:    r.ClientName,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, *FromDomainReview(r))
	}
	return resp
}
