package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/internal/service/stats/models"
)

// Service сервис статистики записей для администратора
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetStats возвращает сводку за период: количество записей по статусам,
// выручку по выполненным и разбивку по услугам
func (s *Service) GetStats(ctx context.Context, req *models.GetStatsRequest) (*models.StatsResponse, error) {
	from, err := time.ParseInLocation(domain.DateFormat, req.From, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: from must be in format %s", ErrInvalidInput, domain.DateFormat)
	}
	to, err := time.ParseInLocation(domain.DateFormat, req.To, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: to must be in format %s", ErrInvalidInput, domain.DateFormat)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("GetStats: repository error for period %s..%s: %v", req.From, req.To, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{From: req.From, To: req.To}
	byService := make(map[int64]*models.ServiceStats)

	for _, apt := range appointments {
		resp.Total++

		svcStats, ok := byService[apt.ServiceID]
		if !ok {
			svcStats = &models.ServiceStats{
				ServiceID:   apt.ServiceID,
				ServiceName: apt.ServiceName,
			}
			byService[apt.ServiceID] = svcStats
		}
		svcStats.Total++

		switch apt.Status {
		case domain.StatusConfirmed:
			resp.Confirmed++
		case domain.StatusCompleted:
			resp.Completed++
			resp.Revenue += apt.Price
			svcStats.Completed++
			svcStats.Revenue += apt.Price
		case domain.StatusCancelled:
			resp.Cancelled++
		}
	}

	resp.ByService = make([]models.ServiceStats, 0, len(byService))
	for _, svcStats := range byService {
		resp.ByService = append(resp.ByService, *svcStats)
	}
	sort.Slice(resp.ByService, func(i, j int) bool {
		return resp.ByService[i].ServiceID < resp.ByService[j].ServiceID
	})

	s.logger.Info("GetStats: period %s..%s total=%d revenue=%.2f", req.From, req.To, resp.Total, resp.Revenue)
	return resp, nil
}
