package check_clash

import (
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

// Request модель запроса на проверку конфликта дат
type Request struct {
	RoomID       string
	CheckinDate  time.Time
	CheckoutDate time.Time

	// ExcludeBookingID исключает бронирование из проверки (для edit-in-place)
	ExcludeBookingID *string
}

// Clash данные конфликтующего бронирования
type Clash struct {
	BookingID    string
	GuestID      string
	RoomID       string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       string
}

// Response результат проверки: флаг и список конфликтующих бронирований
type Response struct {
	HasClash bool
	Clashes  []Clash
}

// fromDomainClashes конвертирует доменные модели в response
func fromDomainClashes(clashes []*domain.Booking) *Response {
	resp := &Response{
		HasClash: len(clashes) > 0,
		Clashes:  make([]Clash, len(clashes)),
	}

	for i, b := range clashes {
		resp.Clashes[i] = Clash{
			BookingID:    b.BookingID,
			GuestID:      b.GuestID,
			RoomID:       b.RoomID,
			CheckinDate:  b.CheckinDate,
			CheckoutDate: b.CheckoutDate,
			Status:       string(b.Status),
		}
	}

	return resp
}
