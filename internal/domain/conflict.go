package domain

import "fmt"

// ConflictError возвращается, когда запрошенный диапазон дат пересекается
// с активными бронированиями того же номера
// Несёт список конфликтующих бронирований для диагностики вызывающей стороны
// Отличим от FieldErrors: клиент показывает "номер занят", а не "исправьте форму"
type ConflictError struct {
	RoomID  string
	Clashes []*Booking
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is unavailable for the requested dates (%d clashing bookings)",
		e.RoomID, len(e.Clashes))
}
