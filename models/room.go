package models

import (
	"fmt"
	"time"
)

type Room struct {
	RoomId       uint         `json:"id" gorm:"primaryKey"`
	CategoryID   uint         `json:"categoryId" gorm:"index"`
	RoomName     string       `json:"roomName"`
	Floor        int          `json:"floor"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Status       int          `json:"status" gorm:"default:0"`
	Category     RoomCategory `json:"category" gorm:"foreignKey:CategoryID"`
	RoomStatuses []RoomStatus `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
