package check_clash

import (
	"errors"
	"net/http"

	"github.com/m04kA/RMS-BookingService/internal/api/handlers"
	checkClash "github.com/m04kA/RMS-BookingService/internal/usecase/check_clash"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckClashUseCase
	logger  Logger
}

func NewHandler(useCase CheckClashUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-clash
// Pre-flight проверка для UI перед отправкой формы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckClashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-clash - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check-clash - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkClash.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check-clash - Invalid input: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/check-clash - Failed to check clash: room_id=%s, error=%v",
				req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/check-clash - Checked: room_id=%s, has_clash=%t",
		req.RoomID, result.HasClash)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
