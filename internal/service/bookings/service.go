package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/RMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/RMS-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
// Записи проходят через usecases создания и обновления,
// где выполняется проверка конфликтов дат
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByBookingID получает бронирование по бизнес-идентификатору
func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByBookingID: fetching booking=%s", bookingID)

	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByBookingID: booking=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBookingID: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу, номеру, гостю и окну дат
// Оконный фильтр отбирает бронирования, чья дата заезда или выезда попадает
// в [StartDate, EndDate]: это семантика списков, не проверки конфликтов
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings (status=%v, room=%v, guest=%v)",
		deref(req.Status), deref(req.RoomID), deref(req.GuestID))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookingsList, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookingsList))
	return models.FromDomainBookingList(bookingsList), nil
}

// Delete удаляет бронирование по бизнес-идентификатору
// Каскадов нет: удаление не затрагивает гостя и номер
func (s *Service) Delete(ctx context.Context, bookingID string) error {
	s.logger.Info("Delete: deleting booking=%s", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking=%s", bookingID)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
