package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlapsRange_ClosedInterval(t *testing.T) {
	b := &Booking{
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
	}

	tests := []struct {
		name     string
		checkin  string
		checkout string
		want     bool
	}{
		{"partial overlap from the right", "2025-11-04", "2025-11-08", true},
		{"touching endpoint clashes", "2025-11-05", "2025-11-08", true},
		{"touching start clashes", "2025-10-28", "2025-11-01", true},
		{"fully inside", "2025-11-02", "2025-11-03", true},
		{"fully covering", "2025-10-28", "2025-11-10", true},
		{"strictly after", "2025-11-06", "2025-11-10", false},
		{"strictly before", "2025-10-20", "2025-10-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.OverlapsRange(OverlapClosedInterval, date(tt.checkin), date(tt.checkout))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsRange_HalfOpenAllowsSameDayTurnover(t *testing.T) {
	b := &Booking{
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
	}

	// Заселение в день чужого выселения разрешено
	assert.False(t, b.OverlapsRange(OverlapHalfOpen, date("2025-11-05"), date("2025-11-08")))
	assert.False(t, b.OverlapsRange(OverlapHalfOpen, date("2025-10-28"), date("2025-11-01")))

	// Реальное пересечение по-прежнему конфликтует
	assert.True(t, b.OverlapsRange(OverlapHalfOpen, date("2025-11-04"), date("2025-11-08")))
}

func TestPolicyFromSameDayTurnover(t *testing.T) {
	assert.Equal(t, OverlapHalfOpen, PolicyFromSameDayTurnover(true))
	assert.Equal(t, OverlapClosedInterval, PolicyFromSameDayTurnover(false))
}

func TestIsActive(t *testing.T) {
	active := []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn}
	for _, status := range active {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should be active", status)
	}

	inactive := []BookingStatus{StatusCancelled, StatusCheckedOut}
	for _, status := range inactive {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s should be inactive", status)
	}
}

func TestNights(t *testing.T) {
	b := &Booking{
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
	}
	assert.Equal(t, 4, b.Nights())
}
