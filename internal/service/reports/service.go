package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/internal/service/reports/models"
)

// Service сервис отчётов: read-only агрегаты поверх бронирований
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Occupancy возвращает занятость номерного фонда за период:
// уникальные номера с бронированиями Confirmed/Checked-in,
// пересекающимися с периодом, против общего числа номеров
func (s *Service) Occupancy(ctx context.Context, start, end time.Time) (*models.OccupancyResponse, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	s.logger.Info("Occupancy: period=%s to %s",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	totalRooms, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Occupancy: failed to count rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to count rooms: %v", ErrInternal, err)
	}

	occupied, err := s.bookingRepo.CountOccupiedRooms(ctx, start, end)
	if err != nil {
		s.logger.Error("Occupancy: failed to count occupied rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to count occupied rooms: %v", ErrInternal, err)
	}

	var rate float64
	if totalRooms > 0 {
		rate = math.Round(float64(occupied)/float64(totalRooms)*10000) / 100
	}

	return &models.OccupancyResponse{
		TotalRooms:    totalRooms,
		OccupiedRooms: occupied,
		OccupancyRate: rate,
		Period: models.ReportPeriod{
			StartDate: start.Format(domain.DateFormat),
			EndDate:   end.Format(domain.DateFormat),
		},
	}, nil
}

// BookingsSummary возвращает количество бронирований по каждому статусу
// Статусы без бронирований присутствуют в ответе с нулём
func (s *Service) BookingsSummary(ctx context.Context) (*models.BookingsSummaryResponse, error) {
	s.logger.Info("BookingsSummary: counting bookings by status")

	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("BookingsSummary: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	resp := &models.BookingsSummaryResponse{
		ByStatus: make(map[string]int64, len(domain.AllStatuses)),
	}
	for _, status := range domain.AllStatuses {
		count := counts[status]
		resp.ByStatus[string(status)] = count
		resp.Total += count
	}

	return resp, nil
}
