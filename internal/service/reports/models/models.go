package models

// OccupancyResponse отчёт о занятости номерного фонда за период
type OccupancyResponse struct {
	TotalRooms    int64        `json:"totalRooms"`
	OccupiedRooms int64        `json:"occupiedRooms"`
	OccupancyRate float64      `json:"occupancyRate"` // Процент, округлён до сотых
	Period        ReportPeriod `json:"period"`
}

// ReportPeriod границы периода отчёта
type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BookingsSummaryResponse количество бронирований по каждому статусу
type BookingsSummaryResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
