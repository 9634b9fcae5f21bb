package check_clash

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/pkg/ptr"
)

// fakeRepo in-memory репозиторий для тестов usecase
type fakeRepo struct {
	bookings []*domain.Booking
}

func (r *fakeRepo) FindClashes(_ context.Context, q domain.ClashQuery, policy domain.OverlapPolicy) ([]*domain.Booking, error) {
	var clashes []*domain.Booking
	for _, b := range r.bookings {
		if b.RoomID != q.RoomID || !b.IsActive() {
			continue
		}
		if q.ExcludeBookingID != nil && b.BookingID == *q.ExcludeBookingID {
			continue
		}
		if b.OverlapsRange(policy, q.CheckinDate, q.CheckoutDate) {
			clashes = append(clashes, b)
		}
	}
	return clashes, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seededRepo() *fakeRepo {
	return &fakeRepo{bookings: []*domain.Booking{
		{
			BookingID:    "BK12345",
			GuestID:      "guest-001",
			RoomID:       "room-101",
			CheckinDate:  date("2025-11-01"),
			CheckoutDate: date("2025-11-05"),
			Status:       domain.StatusConfirmed,
		},
		{
			BookingID:    "BK55555",
			GuestID:      "guest-003",
			RoomID:       "room-101",
			CheckinDate:  date("2025-11-03"),
			CheckoutDate: date("2025-11-07"),
			Status:       domain.StatusCancelled,
		},
	}}
}

func TestExecute_ReportsClash(t *testing.T) {
	uc := NewUseCase(seededRepo(), domain.OverlapClosedInterval, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-04"),
		CheckoutDate: date("2025-11-08"),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasClash)
	require.Len(t, resp.Clashes, 1, "cancelled booking must not be reported")
	assert.Equal(t, "BK12345", resp.Clashes[0].BookingID)
	assert.Equal(t, "Confirmed", resp.Clashes[0].Status)
}

func TestExecute_NoClashForFreeRange(t *testing.T) {
	uc := NewUseCase(seededRepo(), domain.OverlapClosedInterval, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-20"),
		CheckoutDate: date("2025-11-25"),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasClash)
	assert.Empty(t, resp.Clashes)
}

func TestExecute_NoClashForDifferentRoom(t *testing.T) {
	uc := NewUseCase(seededRepo(), domain.OverlapClosedInterval, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       "room-202",
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasClash)
}

func TestExecute_ExcludeBookingID(t *testing.T) {
	uc := NewUseCase(seededRepo(), domain.OverlapClosedInterval, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:           "room-101",
		CheckinDate:      date("2025-11-02"),
		CheckoutDate:     date("2025-11-04"),
		ExcludeBookingID: ptr.Ptr("BK12345"),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasClash, "excluded booking must not clash with itself")
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(seededRepo(), domain.OverlapClosedInterval, noopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty room", &Request{CheckinDate: date("2025-11-01"), CheckoutDate: date("2025-11-05")}},
		{"missing dates", &Request{RoomID: "room-101"}},
		{"checkout before checkin", &Request{
			RoomID:       "room-101",
			CheckinDate:  date("2025-11-05"),
			CheckoutDate: date("2025-11-01"),
		}},
		{"checkout equals checkin", &Request{
			RoomID:       "room-101",
			CheckinDate:  date("2025-11-01"),
			CheckoutDate: date("2025-11-01"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
