package dto

import "frontdesk/models"

// RoomTypeAvailability là tồn phòng của một loại phòng trong ngày
type RoomTypeAvailability struct {
	CategoryID     string `json:"categoryId"`
	TotalRooms     int    `json:"totalRooms"`
	AvailableRooms int    `json:"availableRooms"`
}

// DateDetail is the date-detail endpoint payload for one date.
type DateDetail struct {
	Date      string                 `json:"date"`
	RoomTypes []RoomTypeAvailability `json:"roomTypes"`
}

// MonthlyAvailabilityQuery là tham số của endpoint monthly availability
type MonthlyAvailabilityQuery struct {
	Year       int    `form:"year" validate:"required,gte=2000,lte=2100"`
	Month      int    `form:"month" validate:"required,gte=1,lte=12"`
	CategoryID string `form:"categoryId"`
}

// AvailabilityResponse là response của GET /availability
type AvailabilityResponse struct {
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	CategoryID string                `json:"categoryId"`
	Days       []models.DayOccupancy `json:"days"`
}

// ConflictQuery là tham số của GET /conflicts (ngày dạng 02/01/2006)
type ConflictQuery struct {
	CheckIn    string `form:"checkIn" validate:"required"`
	CheckOut   string `form:"checkOut" validate:"required"`
	CategoryID string `form:"categoryId"`
	Alternates int    `form:"alternates" validate:"gte=0,lte=10"`
}

// ConflictResponse bọc báo cáo xung đột và các khoảng thay thế
type ConflictResponse struct {
	Report     *models.ConflictReport   `json:"report"`
	Summary    string                   `json:"summary"`
	Alternates []models.AlternateWindow `json:"alternates,omitempty"`
}
