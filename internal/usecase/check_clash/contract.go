package check_clash

import (
	"context"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindClashes(ctx context.Context, q domain.ClashQuery, policy domain.OverlapPolicy) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
