package domain

// Business validation constants
const (
	MinBookingIDLength = 3
	MaxBookingIDLength = 15
	MaxPaidAmount      = 1_000_000
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не участвующие в проверке конфликтов дат
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCheckedOut,
}

// AllStatuses полный список допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
