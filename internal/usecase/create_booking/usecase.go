package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка занятости идентификатора, проверка конфликта дат и вставка
// выполняются в одной сериализуемой транзакции: без неё два одновременных
// запроса на пересекающиеся даты могли бы пройти проверку одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: booking=%s, guest=%s, room=%s, checkin=%s, checkout=%s",
		req.BookingID, req.GuestID, req.RoomID,
		req.CheckinDate.Format(domain.DateFormat), req.CheckoutDate.Format(domain.DateFormat))

	// 1. Собираем кандидата с дефолтами и валидируем полевые ограничения
	candidate := req.toCandidate()
	if fieldErrs := domain.ValidateBooking(candidate); fieldErrs != nil {
		uc.logger.Warn("CreateBooking: validation failed for booking=%s: %v", req.BookingID, fieldErrs)
		return nil, fieldErrs
	}

	var result *domain.Booking

	// 2. Проверка + запись атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Уникальность бизнес-идентификатора
		exists, err := uc.bookingRepo.ExistsByBookingID(txCtx, candidate.BookingID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check booking id: %v", err)
			return fmt.Errorf("%w: failed to check booking id: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: booking id=%s already taken", candidate.BookingID)
			return ErrBookingIDTaken
		}

		// 2.2. Конфликт дат по номеру (с блокировкой строк внутри транзакции)
		clashes, err := uc.bookingRepo.FindClashes(txCtx, domain.ClashQuery{
			RoomID:       candidate.RoomID,
			CheckinDate:  candidate.CheckinDate,
			CheckoutDate: candidate.CheckoutDate,
		}, uc.policy)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find clashes: %v", err)
			return fmt.Errorf("%w: failed to find clashes: %v", ErrInternal, err)
		}
		if len(clashes) > 0 {
			uc.logger.Warn("CreateBooking: room=%s unavailable, %d clashing bookings",
				candidate.RoomID, len(clashes))
			return &domain.ConflictError{RoomID: candidate.RoomID, Clashes: clashes}
		}

		// 2.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking=%s (id=%d)", result.BookingID, result.ID)

	return fromDomain(result), nil
}
