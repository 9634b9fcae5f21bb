package update_booking

import (
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// Request модель запроса на обновление бронирования
// Таблицы переходов статусов нет: новый статус просто замещает старый
// после проверки enum. Отсутствующие в теле статус и сумма сохраняют
// прежние значения записи, а не сбрасываются к значениям по умолчанию
type Request struct {
	BookingID string // Бизнес-идентификатор из пути запроса

	// BodyBookingID бизнес-идентификатор из тела запроса (если прислан)
	// Используется только для проверки неизменяемости
	BodyBookingID *string

	GuestID      string
	RoomID       string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       *string
	PaidAmount   *float64
}

// Response модель ответа с обновленным бронированием
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

// toCandidate собирает доменную модель из запроса поверх существующей записи:
// не присланные статус и сумма берутся из existing
func (r *Request) toCandidate(existing *domain.Booking) *domain.Booking {
	status := existing.Status
	if r.Status != nil {
		status = domain.BookingStatus(*r.Status)
	}

	paid := existing.PaidAmount
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
