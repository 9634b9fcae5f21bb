package occupancy_report

import (
	"context"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/service/reports/models"
)

type ReportsService interface {
	Occupancy(ctx context.Context, start, end time.Time) (*models.OccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
