package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном периоде отчёта
	ErrInvalidPeriod = errors.New("reports: invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
