package models

import "time"

// RoomCategory là loại phòng (Standard, Deluxe, ...)
type RoomCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;size:32"`
	Name        string    `json:"name"`
	NightlyRate float64   `json:"nightlyRate"`
	People      int       `json:"people"`
	Rooms       []Room    `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
