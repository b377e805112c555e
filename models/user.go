package models

import (
	"time"

	"github.com/lib/pq"
)

// Operator là nhân viên lễ tân dùng console
type Operator struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New Operator" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Role        int           `gorm:"default:3" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	CategoryIDs pq.Int64Array `json:"categoryIds" gorm:"type:integer[]"`
}

// ManagesCategory reports whether the operator may act on category id.
// An empty scope means every category.
func (o Operator) ManagesCategory(id uint) bool {
	if len(o.CategoryIDs) == 0 {
		return true
	}
	for _, c := range o.CategoryIDs {
		if c == int64(id) {
			return true
		}
	}
	return false
}
