package bookings_summary

import (
	"net/http"

	"github.com/m04kA/RMS-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/reports/bookings-summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.BookingsSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/bookings-summary - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/bookings-summary - Report built: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
