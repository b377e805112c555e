package services

import (
	"context"
	"sync"
	"time"

	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// memoryDirectory serves canned inventory and counts reads.
type memoryDirectory struct {
	fakeDispatcher

	mu           sync.Mutex
	records      []models.RoomCategoryDay
	categories   []dto.RoomCategoryResponse
	monthReads   int
	categoryRead int
}

func (d *memoryDirectory) MonthlyAvailability(ctx context.Context, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.monthReads++

	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	var out []models.RoomCategoryDay
	for _, r := range d.records {
		if len(r.Date) >= 7 && r.Date[:7] == prefix {
			out = append(out, r)
		}
	}
	return out, nil
}

func (d *memoryDirectory) DateDetail(ctx context.Context, date string) (*dto.DateDetail, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	detail := &dto.DateDetail{Date: date}
	for _, r := range d.records {
		if r.Date == date {
			detail.RoomTypes = append(detail.RoomTypes, dto.RoomTypeAvailability{
				CategoryID:     r.CategoryID,
				TotalRooms:     r.TotalRooms,
				AvailableRooms: r.AvailableRooms,
			})
		}
	}
	return detail, nil
}

func (d *memoryDirectory) Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.categoryRead++
	if d.categories == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "no categories", nil)
	}
	return d.categories, nil
}

func (d *memoryDirectory) reads() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.monthReads, d.categoryRead
}
