package create_booking

import (
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	BookingID    string    // Бизнес-идентификатор (назначается вызывающей стороной)
	GuestID      string    // Бизнес-ссылка на гостя
	RoomID       string    // Бизнес-ссылка на номер
	CheckinDate  time.Time // Дата заезда
	CheckoutDate time.Time // Дата выезда
	Status       *string   // Статус (опционально, по умолчанию Pending)
	PaidAmount   *float64  // Оплаченная сумма (опционально, по умолчанию 0)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	BookingID    string
	GuestID      string
	RoomID       string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       string
	PaidAmount   float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// toCandidate собирает доменную модель из запроса, применяя значения по умолчанию
func (r *Request) toCandidate() *domain.Booking {
	status := domain.StatusPending
	if r.Status != nil {
		status = domain.BookingStatus(*r.Status)
	}

	var paid float64
	if r.PaidAmount != nil {
		paid = *r.PaidAmount
	}

	return &domain.Booking{
		BookingID:    r.BookingID,
		GuestID:      r.GuestID,
		RoomID:       r.RoomID,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
		Status:       status,
		PaidAmount:   paid,
	}
}

// fromDomain конвертирует доменную модель в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		BookingID:    b.BookingID,
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckinDate:  b.CheckinDate,
		CheckoutDate: b.CheckoutDate,
		Status:       string(b.Status),
		PaidAmount:   b.PaidAmount,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
