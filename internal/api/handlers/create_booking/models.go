package create_booking

import (
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/RMS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingID    string   `json:"bookingId"`
	GuestID      string   `json:"guestId"`
	RoomID       string   `json:"roomId"`
	CheckinDate  string   `json:"checkinDate"`  // "2025-11-01"
	CheckoutDate string   `json:"checkoutDate"` // "2025-11-05"
	Status       *string  `json:"status,omitempty"`
	PaidAmount   *float64 `json:"paidAmount,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	BookingID    string  `json:"bookingId"`
	GuestID      string  `json:"guestId"`
	RoomID       string  `json:"roomId"`
	CheckinDate  string  `json:"checkinDate"`
	CheckoutDate string  `json:"checkoutDate"`
	Status       string  `json:"status"`
	PaidAmount   float64 `json:"paidAmount"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ConflictResponse тело 409 ответа со списком конфликтующих бронирований
type ConflictResponse struct {
	Message string            `json:"message"`
	Clashes []BookingResponse `json:"clashes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkin, err := time.Parse(domain.DateFormat, r.CheckinDate)
	if err != nil {
		return nil, err
	}

	checkout, err := time.Parse(domain.DateFormat, r.CheckoutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BookingID:    r.BookingID,
		GuestID:      r.GuestID,
		RoomID:       r.RoomID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Status:       r.Status,
		PaidAmount:   r.PaidAmount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		BookingID:    resp.BookingID,
		GuestID:      resp.GuestID,
		RoomID:       resp.RoomID,
		CheckinDate:  resp.CheckinDate.Format(domain.DateFormat),
		CheckoutDate: resp.CheckoutDate.Format(domain.DateFormat),
		Status:       resp.Status,
		PaidAmount:   resp.PaidAmount,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainClashes конвертирует конфликтующие бронирования для 409 ответа
func FromDomainClashes(message string, clashes []*domain.Booking) *ConflictResponse {
	resp := &ConflictResponse{
		Message: message,
		Clashes: make([]BookingResponse, len(clashes)),
	}

	for i, b := range clashes {
		resp.Clashes[i] = BookingResponse{
			ID:           b.ID,
			BookingID:    b.BookingID,
			GuestID:      b.GuestID,
			RoomID:       b.RoomID,
			CheckinDate:  b.CheckinDate.Format(domain.DateFormat),
			CheckoutDate: b.CheckoutDate.Format(domain.DateFormat),
			Status:       string(b.Status),
			PaidAmount:   b.PaidAmount,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
		}
	}

	return resp
}
