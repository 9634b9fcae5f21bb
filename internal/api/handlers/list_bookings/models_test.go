package list_bookings

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-BookingService/internal/domain"
)

func TestParseQuery_AllFilters(t *testing.T) {
	values := url.Values{}
	values.Set("status", "Confirmed")
	values.Set("roomId", "room-101")
	values.Set("guestId", "guest-001")
	values.Set("startDate", "2025-11-01")
	values.Set("endDate", "2025-11-30")

	req, err := ParseQuery(values)

	require.NoError(t, err)
	require.NotNil(t, req.Status)
	assert.Equal(t, "Confirmed", *req.Status)
	require.NotNil(t, req.RoomID)
	assert.Equal(t, "room-101", *req.RoomID)
	require.NotNil(t, req.GuestID)
	assert.Equal(t, "guest-001", *req.GuestID)

	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, "2025-11-01", req.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2025-11-30", req.EndDate.Format(domain.DateFormat))
}

func TestParseQuery_Empty(t *testing.T) {
	req, err := ParseQuery(url.Values{})

	require.NoError(t, err)
	assert.Nil(t, req.Status)
	assert.Nil(t, req.RoomID)
	assert.Nil(t, req.GuestID)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
}

func TestParseQuery_WindowRequiresBothBounds(t *testing.T) {
	values := url.Values{}
	values.Set("startDate", "2025-11-01")

	req, err := ParseQuery(values)

	require.NoError(t, err)
	assert.Nil(t, req.StartDate, "window must be ignored without both bounds")
	assert.Nil(t, req.EndDate)
}

func TestParseQuery_InvalidDate(t *testing.T) {
	values := url.Values{}
	values.Set("startDate", "01-11-2025")
	values.Set("endDate", "2025-11-30")

	_, err := ParseQuery(values)
	assert.Error(t, err)
}
