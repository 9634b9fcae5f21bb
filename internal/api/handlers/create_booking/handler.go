package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RMS-BookingService/internal/api/handlers"
	"github.com/m04kA/RMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/RMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "исправьте ошибки в полях формы"
	msgRoomUnavailable    = "номер занят на выбранные даты"
	msgBookingIDTaken     = "бронирование с таким идентификатором уже существует"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var fieldErrs domain.FieldErrors
		var conflict *domain.ConflictError

		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /bookings - Validation failed: booking_id=%s", req.BookingID)
			handlers.RespondValidationError(w, msgValidationFailed, fieldErrs)

		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Room unavailable: booking_id=%s, room_id=%s",
				req.BookingID, req.RoomID)
			handlers.RespondJSON(w, http.StatusConflict, FromDomainClashes(msgRoomUnavailable, conflict.Clashes))

		case errors.Is(err, createBooking.ErrBookingIDTaken):
			h.logger.Warn("POST /bookings - Booking ID taken: booking_id=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingIDTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s",
		result.BookingID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
