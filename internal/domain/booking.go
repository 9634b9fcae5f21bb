package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusConfirmed  BookingStatus = "Confirmed"
	StatusCheckedIn  BookingStatus = "Checked-in"
	StatusCheckedOut BookingStatus = "Checked-out"
	StatusCancelled  BookingStatus = "Cancelled"
)

// Booking represents a room booking in the resort
type Booking struct {
	ID int64 // внутренний идентификатор хранилища

	// BookingID бизнес-идентификатор, уникальный, неизменяемый после создания
	BookingID string

	// GuestID и RoomID слабые ссылки по бизнес-идентификаторам:
	// существование гостя и номера хранилищем не проверяется
	GuestID string
	RoomID  string

	CheckinDate  time.Time
	CheckoutDate time.Time

	Status     BookingStatus
	PaidAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in overlap checks
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCheckedOut
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return int(b.CheckoutDate.Sub(b.CheckinDate).Hours() / 24)
}

// OverlapsRange проверяет пересечение дат бронирования с диапазоном [checkin, checkout]
// Семантика границ определяется политикой (см. OverlapPolicy)
func (b *Booking) OverlapsRange(policy OverlapPolicy, checkin, checkout time.Time) bool {
	if policy == OverlapHalfOpen {
		return b.CheckinDate.Before(checkout) && b.CheckoutDate.After(checkin)
	}
	return !b.CheckinDate.After(checkout) && !b.CheckoutDate.Before(checkin)
}

// OverlapPolicy семантика границ при проверке пересечения дат
type OverlapPolicy int

const (
	// OverlapClosedInterval выселение и заселение в один день конфликтуют
	// (checkin <= proposedCheckout AND checkout >= proposedCheckin)
	OverlapClosedInterval OverlapPolicy = iota

	// OverlapHalfOpen разрешает заселение в день чужого выселения
	OverlapHalfOpen
)

// PolicyFromSameDayTurnover конвертирует конфигурационный флаг в политику
func PolicyFromSameDayTurnover(allowed bool) OverlapPolicy {
	if allowed {
		return OverlapHalfOpen
	}
	return OverlapClosedInterval
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status  *BookingStatus // Фильтр по статусу (опционально)
	RoomID  *string        // Фильтр по номеру (опционально)
	GuestID *string        // Фильтр по гостю (опционально)

	// Окно дат: бронирование попадает в выборку, если его checkinDate
	// или checkoutDate лежит в [StartDate, EndDate]. Это семантика
	// списков и отчётов, не семантика проверки конфликтов.
	StartDate *time.Time
	EndDate   *time.Time
}

// ClashQuery параметры проверки конфликта дат по номеру
type ClashQuery struct {
	RoomID       string
	CheckinDate  time.Time
	CheckoutDate time.Time

	// ExcludeBookingID исключает бронирование из проверки,
	// чтобы редактирование не конфликтовало само с собой
	ExcludeBookingID *string
}
