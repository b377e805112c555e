package models

import (
	"fmt"
	"time"
)

// Holiday là kỳ nghỉ lễ có phụ thu tiền phòng
type Holiday struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	FromDate  string    `json:"fromDate"` // 02/01/2006
	ToDate    string    `json:"toDate"`   // 02/01/2006
	Price     int       `json:"price"`    // Phụ thu theo phần trăm
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Range parses FromDate and ToDate.
func (h Holiday) Range() (time.Time, time.Time, error) {
	from, err := time.Parse(DisplayDateLayout, h.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("holiday %d: fromDate %q: %w", h.ID, h.FromDate, err)
	}
	to, err := time.Parse(DisplayDateLayout, h.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("holiday %d: toDate %q: %w", h.ID, h.ToDate, err)
	}
	return from, to, nil
}

// Overlaps reports whether the stay touches the holiday.
func (h Holiday) Overlaps(window StayWindow) (bool, error) {
	from, to, err := h.Range()
	if err != nil {
		return false, err
	}
	checkIn, checkOut := TruncateDay(window.CheckIn), TruncateDay(window.CheckOut)
	return (checkIn.Before(to) && checkOut.After(from)) || checkIn.Equal(from) || checkOut.Equal(to), nil
}
