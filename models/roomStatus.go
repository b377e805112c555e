package models

import "time"

// RoomStatus giữ trạng thái của phòng trong khoảng [FromDate, ToDate)
type RoomStatus struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"index"`
	FromDate  time.Time `gorm:"index"`
	ToDate    time.Time `gorm:"index"`
	Status    int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the row blocks the night starting at day.
func (s RoomStatus) Covers(day time.Time) bool {
	d := TruncateDay(day)
	return !d.Before(TruncateDay(s.FromDate)) && d.Before(TruncateDay(s.ToDate))
}
