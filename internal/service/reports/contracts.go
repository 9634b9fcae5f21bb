package reports

import (
	"context"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountOccupiedRooms(ctx context.Context, start, end time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	CountAll(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
