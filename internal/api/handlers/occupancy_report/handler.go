package occupancy_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/api/handlers"
	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/internal/service/reports"
)

const (
	msgInvalidPeriod = "некорректный период отчёта, ожидается startDate и endDate в формате YYYY-MM-DD"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/occupancy?startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	end, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.Occupancy(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/occupancy - Invalid period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/occupancy - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/occupancy - Report built: occupied=%d/%d",
		result.OccupiedRooms, result.TotalRooms)
	handlers.RespondJSON(w, http.StatusOK, result)
}
