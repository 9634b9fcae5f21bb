package create_booking

import "errors"

var (
	// ErrBookingIDTaken возвращается при попытке создать бронирование
	// с уже занятым бизнес-идентификатором
	// Отличим от ошибки формата поля (см. domain.FieldErrors)
	ErrBookingIDTaken = errors.New("create_booking: booking id already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
