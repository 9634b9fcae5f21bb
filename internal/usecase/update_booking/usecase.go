package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RMS-BookingService/internal/infra/storage/booking"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	policy      domain.OverlapPolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	policy domain.OverlapPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		policy:      policy,
		logger:      logger,
	}
}

// Execute выполняет use case обновления бронирования
// Собственное бронирование исключается из проверки конфликта дат,
// чтобы редактирование на месте не конфликтовало само с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s, room=%s, checkin=%s, checkout=%s",
		req.BookingID, req.RoomID,
		req.CheckinDate.Format(domain.DateFormat), req.CheckoutDate.Format(domain.DateFormat))

	// 1. Бизнес-идентификатор неизменяем
	if req.BodyBookingID != nil && *req.BodyBookingID != req.BookingID {
		uc.logger.Warn("UpdateBooking: attempt to change booking id %s -> %s",
			req.BookingID, *req.BodyBookingID)
		return nil, domain.FieldErrors{"bookingId": "Booking ID cannot be changed"}
	}

	var result *domain.Booking

	// 2. Чтение, валидация слитой записи, проверка конфликта и перезапись атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByBookingID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Кандидат собирается поверх существующей записи: не присланные
		// статус и сумма сохраняют прежние значения, а не сбрасываются
		candidate := req.toCandidate(existing)
		if fieldErrs := domain.ValidateBooking(candidate); fieldErrs != nil {
			uc.logger.Warn("UpdateBooking: validation failed for booking=%s: %v", req.BookingID, fieldErrs)
			return fieldErrs
		}

		// Конфликт дат, исключая себя
		clashes, err := uc.bookingRepo.FindClashes(txCtx, domain.ClashQuery{
			RoomID:           candidate.RoomID,
			CheckinDate:      candidate.CheckinDate,
			CheckoutDate:     candidate.CheckoutDate,
			ExcludeBookingID: &existing.BookingID,
		}, uc.policy)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to find clashes: %v", err)
			return fmt.Errorf("%w: failed to find clashes: %v", ErrInternal, err)
		}
		if len(clashes) > 0 {
			uc.logger.Warn("UpdateBooking: room=%s unavailable, %d clashing bookings",
				candidate.RoomID, len(clashes))
			return &domain.ConflictError{RoomID: candidate.RoomID, Clashes: clashes}
		}

		updated, err := uc.bookingRepo.Update(txCtx, candidate)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking=%s (id=%d)", result.BookingID, result.ID)

	return fromDomain(result), nil
}
