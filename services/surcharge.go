package services

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/models"
)

const (
	// RushWindowDays là số ngày trước check-in tính phụ thu gấp
	RushWindowDays = 3
	// RushPercent là phần trăm phụ thu gấp trên tiền phòng
	RushPercent = 5.0
)

// HolidaySurcharge sums the percentage surcharge of every holiday the stay
// overlaps and applies it to the room base. Returns nil when nothing applies.
func HolidaySurcharge(window models.StayWindow, roomBase float64, holidays []models.Holiday) (*models.Charge, error) {
	percent := 0
	var names []string
	for _, h := range holidays {
		overlaps, err := h.Overlaps(window)
		if err != nil {
			return nil, err
		}
		if overlaps {
			percent += h.Price
			names = append(names, h.Name)
		}
	}
	if percent <= 0 {
		return nil, nil
	}
	return &models.Charge{
		Kind:   models.ChargeRoom,
		Amount: models.RoundMoney(roomBase * float64(percent) / 100),
		Label:  "Phụ thu ngày lễ: " + strings.Join(names, ", "),
	}, nil
}

// RushSurcharge applies when check-in is at most RushWindowDays after bookedAt.
func RushSurcharge(checkIn, bookedAt time.Time, roomBase float64) *models.Charge {
	daysToCheckIn := int(models.TruncateDay(checkIn).Sub(models.TruncateDay(bookedAt)).Hours() / 24)
	if daysToCheckIn > RushWindowDays {
		return nil
	}
	return &models.Charge{
		Kind:   models.ChargeRoom,
		Amount: models.RoundMoney(roomBase * RushPercent / 100),
		Label:  "Phụ thu nhận phòng gấp",
	}
}

// PercentDiscount turns a member discount percentage into a discount charge.
func PercentDiscount(roomBase, percent float64) *models.Charge {
	if percent <= 0 {
		return nil
	}
	if percent > 100 {
		percent = 100
	}
	return &models.Charge{
		Kind:   models.ChargeDiscount,
		Amount: models.RoundMoney(roomBase * percent / 100),
		Label:  fmt.Sprintf("Giảm giá %.0f%%", percent),
	}
}
