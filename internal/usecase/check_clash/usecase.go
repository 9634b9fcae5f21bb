package check_clash

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// UseCase use case проверки конфликта дат (pre-flight для UI)
// Чистое чтение: ничего не блокирует и не пишет, поэтому результат
// не гарантирует доступность к моменту последующей записи.
// Авторитетная проверка повторяется в create/update внутри транзакции
type UseCase struct {
	bookingRepo BookingRepository
	policy      domain.OverlapPolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, policy domain.OverlapPolicy, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute выполняет проверку конфликта дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckClash: validation failed: %v", err)
		return nil, err
	}

	clashes, err := uc.bookingRepo.FindClashes(ctx, domain.ClashQuery{
		RoomID:           req.RoomID,
		CheckinDate:      req.CheckinDate,
		CheckoutDate:     req.CheckoutDate,
		ExcludeBookingID: req.ExcludeBookingID,
	}, uc.policy)
	if err != nil {
		uc.logger.Error("CheckClash: failed to find clashes for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to find clashes: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckClash: room=%s, checkin=%s, checkout=%s, clashes=%d",
		req.RoomID, req.CheckinDate.Format(domain.DateFormat),
		req.CheckoutDate.Format(domain.DateFormat), len(clashes))

	return fromDomainClashes(clashes), nil
}

// validateRequest валидирует входные данные запроса
// Сам поиск конфликтов порядок дат не перепроверяет, поэтому граница usecase
// обязана отклонить перевёрнутый диапазон до обращения к хранилищу
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.CheckinDate.IsZero() || req.CheckoutDate.IsZero() {
		return fmt.Errorf("%w: checkinDate and checkoutDate are required", ErrInvalidInput)
	}

	if !req.CheckoutDate.After(req.CheckinDate) {
		return fmt.Errorf("%w: checkoutDate must be after checkinDate", ErrInvalidInput)
	}

	return nil
}
