package bookings_summary

import (
	"context"

	"github.com/m04kA/RMS-BookingService/internal/service/reports/models"
)

type ReportsService interface {
	BookingsSummary(ctx context.Context) (*models.BookingsSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
