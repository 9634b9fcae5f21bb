package check_clash

import (
	"time"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	checkClash "github.com/m04kA/RMS-BookingService/internal/usecase/check_clash"
)

// CheckClashRequest HTTP request model
type CheckClashRequest struct {
	RoomID           string  `json:"roomId"`
	CheckinDate      string  `json:"checkinDate"`  // "2025-11-01"
	CheckoutDate     string  `json:"checkoutDate"` // "2025-11-05"
	ExcludeBookingID *string `json:"excludeBookingId,omitempty"`
}

// ClashResponse данные конфликтующего бронирования
type ClashResponse struct {
	BookingID    string `json:"bookingId"`
	GuestID      string `json:"guestId"`
	RoomID       string `json:"roomId"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
	Status       string `json:"status"`
}

// CheckClashResponse HTTP response model
type CheckClashResponse struct {
	HasClash bool            `json:"hasClash"`
	Clashes  []ClashResponse `json:"clashes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckClashRequest) ToUseCaseRequest() (*checkClash.Request, error) {
	checkin, err := time.Parse(domain.DateFormat, r.CheckinDate)
	if err != nil {
		return nil, err
	}

	checkout, err := time.Parse(domain.DateFormat, r.CheckoutDate)
	if err != nil {
		return nil, err
	}

	return &checkClash.Request{
		RoomID:           r.RoomID,
		CheckinDate:      checkin,
		CheckoutDate:     checkout,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkClash.Response) *CheckClashResponse {
	out := &CheckClashResponse{
		HasClash: resp.HasClash,
		Clashes:  make([]ClashResponse, len(resp.Clashes)),
	}

	for i, c := range resp.Clashes {
		out.Clashes[i] = ClashResponse{
			BookingID:    c.BookingID,
			GuestID:      c.GuestID,
			RoomID:       c.RoomID,
			CheckinDate:  c.CheckinDate.Format(domain.DateFormat),
			CheckoutDate: c.CheckoutDate.Format(domain.DateFormat),
			Status:       c.Status,
		}
	}

	return out
}
