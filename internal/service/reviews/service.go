package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/appointment"
	reviewRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/review"
	"github.com/m04kA/NLS-BookingService/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo      ReviewRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает отзыв клиента о завершенной записи.
// Отзыв можно оставить только на свою завершенную запись и только один раз.
func (s *Service) Create(ctx context.Context, clientID string, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	review := req.ToDomain(clientID)
	review.Comment = strings.TrimSpace(review.Comment)
	if err := review.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	apt, err := s.appointmentRepo.GetByID(ctx, review.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Create: appointment id=%d not found", review.AppointmentID)
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, review.AppointmentID)
		}
		s.logger.Error("Create: repository error for appointment id=%d: %v", review.AppointmentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if apt.ClientID != clientID {
		s.logger.Warn("Create: client %s has no access to appointment id=%d", clientID, apt.ID)
		return nil, ErrAccessDenied
	}
	if apt.Status != domain.StatusCompleted {
		s.logger.Warn("Create: appointment id=%d is not completed (status=%s)", apt.ID, apt.Status)
		return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotCompleted, apt.ID)
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewAlreadyExists) {
			s.logger.Warn("Create: appointment id=%d already reviewed", apt.ID)
			return nil, fmt.Errorf("%w: id %d", ErrAlreadyReviewed, apt.ID)
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created review id=%d for appointment id=%d rating=%d",
		created.ID, created.AppointmentID, created.Rating)
	return models.FromDomainReview(created), nil
}

// List возвращает все отзывы, новые первыми
func (s *Service) List(ctx context.Context) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(reviews), nil
}

// ListByClient возвращает отзывы клиента, новые первыми
func (s *Service) ListByClient(ctx context.Context, clientID string) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client %s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(reviews), nil
}
