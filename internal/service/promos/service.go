package promos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	promoRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/promo"
	"github.com/m04kA/NLS-BookingService/internal/service/promos/models"
)

// Service сервис для работы с промокодами
type Service struct {
	promoRepo PromoRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promoRepo PromoRepository, logger Logger) *Service {
	return &Service{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

// Create создает промокод
func (s *Service) Create(ctx context.Context, req *models.CreatePromoRequest) (*models.PromoResponse, error) {
	promo := req.ToDomain()
	promo.Code = strings.TrimSpace(promo.Code)
	if err := promo.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.promoRepo.Create(ctx, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoCodeTaken) {
			s.logger.Warn("Create: promo code %q already exists", promo.Code)
			return nil, fmt.Errorf("%w: %q", ErrPromoCodeTaken, promo.Code)
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created promo id=%d code=%q", created.ID, created.Code)
	return models.FromDomainPromo(created), nil
}

// GetByID возвращает промокод по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PromoResponse, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			s.logger.Warn("GetByID: promo id=%d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrPromoNotFound, id)
		}
		s.logger.Error("GetByID: repository error for promo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPromo(promo), nil
}

// List возвращает все промокоды
func (s *Service) List(ctx context.Context) (*models.PromoListResponse, error) {
	promos, err := s.promoRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPromoList(promos), nil
}

// Update частично обновляет промокод
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePromoRequest) (*models.PromoResponse, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			s.logger.Warn("Update: promo id=%d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrPromoNotFound, id)
		}
		s.logger.Error("Update: repository error for promo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(promo)
	if err := promo.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for promo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.promoRepo.Update(ctx, promo); err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPromoNotFound, id)
		}
		s.logger.Error("Update: repository error for promo id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated promo id=%d", id)
	return models.FromDomainPromo(promo), nil
}

// Delete удаляет промокод
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			s.logger.Warn("Delete: promo id=%d not found", id)
			return fmt.Errorf("%w: id %d", ErrPromoNotFound, id)
		}
		s.logger.Error("Delete: repository error for promo id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted promo id=%d", id)
	return nil
}

// Validate проверяет промокод перед бронированием.
// Код сравнивается без учета регистра. Непригодный или несуществующий
// код - не ошибка, а ответ Valid=false: клиент просто видит, что
// скидка не применится. Использование здесь не погашается - это
// происходит только в момент бронирования.
func (s *Service) Validate(ctx context.Context, req *models.ValidatePromoRequest) (*models.ValidatePromoResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" || req.Price < 0 {
		return nil, fmt.Errorf("%w: code is required and price must be non-negative", ErrInvalidInput)
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			s.logger.Info("Validate: promo code %q not found", code)
			return &models.ValidatePromoResponse{Valid: false}, nil
		}
		s.logger.Error("Validate: repository error for code %q: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	if !promo.IsUsable() {
		s.logger.Info("Validate: promo code %q is not usable", code)
		return &models.ValidatePromoResponse{Valid: false}, nil
	}

	final := promo.DiscountedPrice(req.Price)
	return &models.ValidatePromoResponse{
		Valid:           true,
		DiscountPercent: &promo.DiscountPercent,
		FinalPrice:      &final,
	}, nil
}
