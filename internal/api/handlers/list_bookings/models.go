package list_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/internal/service/bookings/models"
)

// ParseQuery собирает фильтр списка из query параметров
// Поддерживаются: status, roomId, guestId, startDate, endDate
// Окно дат применяется только при обеих границах, как в источнике
func ParseQuery(values url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := values.Get("status"); v != "" {
		req.Status = &v
	}
	if v := values.Get("roomId"); v != "" {
		req.RoomID = &v
	}
	if v := values.Get("guestId"); v != "" {
		req.GuestID = &v
	}

	startStr := values.Get("startDate")
	endStr := values.Get("endDate")
	if startStr != "" && endStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
		req.EndDate = &end
	}

	return req, nil
}
