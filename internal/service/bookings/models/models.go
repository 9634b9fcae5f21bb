package models

import (
	"errors"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status  *string `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	RoomID  *string `json:"roomId,omitempty"`  // Фильтр по номеру (опционально)
	GuestID *string `json:"guestId,omitempty"` // Фильтр по гостю (опционально)

	// Окно дат: обе границы обязательны для применения фильтра
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:    r.RoomID,
		GuestID:   r.GuestID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	BookingID    string  `json:"bookingId"`
	GuestID      string  `json:"guestId"`
	RoomID       string  `json:"roomId"`
	CheckinDate  string  `json:"checkinDate"`  // "2025-11-01"
	CheckoutDate string  `json:"checkoutDate"` // "2025-11-05"
	Status       string  `json:"status"`
	PaidAmount   float64 `json:"paidAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		BookingID:    b.BookingID,
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckinDate:  b.CheckinDate.Format(domain.DateFormat),
		CheckoutDate: b.CheckoutDate.Format(domain.DateFormat),
		Status:       string(b.Status),
		PaidAmount:   b.PaidAmount,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
