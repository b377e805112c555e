package models

import (
	"time"

	"frontdesk/constants"
)

// DateLayout là định dạng ngày dùng trong toàn bộ core
const DateLayout = "2006-01-02"

// DisplayDateLayout là định dạng ngày trên query của lễ tân
const DisplayDateLayout = "02/01/2006"

// RoomCategoryDay is one raw inventory row: a category on a date.
type RoomCategoryDay struct {
	Date           string `json:"date"`
	CategoryID     string `json:"categoryId"`
	TotalRooms     int    `json:"totalRooms"`
	AvailableRooms int    `json:"availableRooms"`
}

// DayOccupancy is derived from RoomCategoryDay records for one date.
type DayOccupancy struct {
	Date           string               `json:"date"`
	TotalRooms     int                  `json:"totalRooms"`
	AvailableRooms int                  `json:"availableRooms"`
	OccupancyRate  float64              `json:"occupancyRate"`
	StatusBand     constants.StatusBand `json:"statusBand"`
}

// HasData reports whether the day carries real inventory.
func (d DayOccupancy) HasData() bool {
	return d.StatusBand != constants.BandNoData
}

// NoDataDay returns the placeholder for a date without a matching record.
func NoDataDay(date string) DayOccupancy {
	return DayOccupancy{Date: date, StatusBand: constants.BandNoData}
}

// ParseDate parses an ISO date (2006-01-02) at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseInputDate accepts 02/01/2006 as well as ISO dates.
func ParseInputDate(s string) (time.Time, error) {
	if t, err := time.Parse(DisplayDateLayout, s); err == nil {
		return t, nil
	}
	return ParseDate(s)
}

// FormatDate formats t as an ISO date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateDay drops the clock part of t, keeping its calendar date.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
