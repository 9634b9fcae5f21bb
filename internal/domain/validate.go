package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Правила валидации полей бронирования определены здесь один раз
// и используются всеми слоями (usecase создания и обновления, HTTP слой).
// Паттерны экспортируются, чтобы интерактивные клиенты могли валидировать
// формы по тому же контракту.

// BookingIDPattern бизнес-идентификатор: 3-15 алфавитно-цифровых символов
var BookingIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,15}$`)

// FieldErrors карта ошибок валидации: имя поля -> сообщение
type FieldErrors map[string]string

// Error реализует error, объединяя сообщения по полям
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// ValidateBooking проверяет полевые ограничения бронирования
// Возвращает nil, если все ограничения выполнены
func ValidateBooking(b *Booking) FieldErrors {
	errs := FieldErrors{}

	if b.BookingID == "" {
		errs["bookingId"] = "Booking ID is required"
	} else if !BookingIDPattern.MatchString(b.BookingID) {
		errs["bookingId"] = fmt.Sprintf("Booking ID must be %d-%d alphanumeric characters",
			MinBookingIDLength, MaxBookingIDLength)
	}

	if strings.TrimSpace(b.GuestID) == "" {
		errs["guestId"] = "Guest ID is required"
	}

	if strings.TrimSpace(b.RoomID) == "" {
		errs["roomId"] = "Room ID is required"
	}

	switch {
	case b.CheckinDate.IsZero():
		errs["checkinDate"] = "Check-in date is required"
	case b.CheckoutDate.IsZero():
		errs["checkoutDate"] = "Check-out date is required"
	case !b.CheckoutDate.After(b.CheckinDate):
		errs["checkoutDate"] = "Check-out date must be after check-in date"
	}

	if !IsValidStatus(b.Status) {
		errs["status"] = fmt.Sprintf("%s is not a valid status", b.Status)
	}

	if b.PaidAmount < 0 || b.PaidAmount > MaxPaidAmount {
		errs["paidAmount"] = "Paid amount must be between 0 and 1,000,000"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
