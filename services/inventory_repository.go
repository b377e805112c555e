package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"frontdesk/commands"
	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// InventoryRepository is the local directory: availability is derived from
// rooms and their room_statuses rows, mutations update those tables.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) MonthlyAvailability(ctx context.Context, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return r.rangeAvailability(ctx, from, from.AddDate(0, 1, 0), categoryID)
}

func (r *InventoryRepository) DateDetail(ctx context.Context, date string) (*dto.DateDetail, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "ngày không hợp lệ", err)
	}
	records, err := r.rangeAvailability(ctx, day, day.AddDate(0, 0, 1), constants.CategoryAll)
	if err != nil {
		return nil, err
	}
	detail := &dto.DateDetail{Date: date}
	for _, rec := range records {
		detail.RoomTypes = append(detail.RoomTypes, dto.RoomTypeAvailability{
			CategoryID:     rec.CategoryID,
			TotalRooms:     rec.TotalRooms,
			AvailableRooms: rec.AvailableRooms,
		})
	}
	return detail, nil
}

func (r *InventoryRepository) Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	var categories []models.RoomCategory
	if err := r.db.WithContext(ctx).Preload("Rooms").Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	out := make([]dto.RoomCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.RoomCategoryResponse{
			ID:          c.Code,
			Name:        c.Name,
			NightlyRate: c.NightlyRate,
			TotalRooms:  len(c.Rooms),
			People:      c.People,
		})
	}
	return out, nil
}

// Dispatch applies the mutation to the database. The token is not used locally.
func (r *InventoryRepository) Dispatch(ctx context.Context, token string, req models.MutationRequest) (*models.MutationResult, error) {
	cmd, err := commands.NewMutationCommand(r.db, req)
	if err != nil {
		return nil, err
	}
	return cmd.Execute(ctx)
}

// Holidays lists the configured holidays for surcharge pricing.
func (r *InventoryRepository) Holidays(ctx context.Context) ([]models.Holiday, error) {
	var holidays []models.Holiday
	if err := r.db.WithContext(ctx).Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

// Operator loads an operator by id.
func (r *InventoryRepository) Operator(ctx context.Context, id uint) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.WithContext(ctx).First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "không tìm thấy nhân viên", err)
		}
		return nil, err
	}
	return &op, nil
}

// RoomCategoryID returns the category of the room behind targetID.
func (r *InventoryRepository) RoomCategoryID(ctx context.Context, targetID string) (uint, error) {
	roomID, err := commands.ParseTargetID(targetID)
	if err != nil {
		return 0, err
	}
	var room models.Room
	if err := r.db.WithContext(ctx).Select("room_id", "category_id").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NewAppError(apperrors.ErrCodeNotFound, "không tìm thấy phòng", err)
		}
		return 0, err
	}
	return room.CategoryID, nil
}

// CheckScope rejects a mutation on a room outside the operator's categories.
// Operators unknown to the local database have no scope.
func (r *InventoryRepository) CheckScope(ctx context.Context, operatorID uint, targetID string) error {
	categoryID, err := r.RoomCategoryID(ctx, targetID)
	if err != nil {
		return err
	}
	op, err := r.Operator(ctx, operatorID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return authorizeScope(op, categoryID, targetID)
}

func authorizeScope(op *models.Operator, categoryID uint, targetID string) error {
	if op == nil {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden, "nhân viên không có quyền trên phòng này", nil)
	}
	if !op.ManagesCategory(categoryID) {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden,
			fmt.Sprintf("nhân viên %d không quản lý loại phòng của phòng %s", op.ID, targetID), nil)
	}
	return nil
}

func (r *InventoryRepository) rangeAvailability(ctx context.Context, from, to time.Time, categoryID string) ([]models.RoomCategoryDay, error) {
	query := r.db.WithContext(ctx).Preload("Rooms")
	if categoryID != "" && !strings.EqualFold(categoryID, constants.CategoryAll) {
		query = query.Where("code = ?", categoryID)
	}
	var categories []models.RoomCategory
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}

	var roomIDs []int64
	for _, c := range categories {
		for _, room := range c.Rooms {
			roomIDs = append(roomIDs, int64(room.RoomId))
		}
	}

	var statuses []models.RoomStatus
	if len(roomIDs) > 0 {
		err := r.db.WithContext(ctx).
			Where("room_id = ANY(?) AND from_date < ? AND to_date > ? AND status <> ?",
				pq.Array(roomIDs), to, from, constants.RoomStatusFree).
			Find(&statuses).Error
		if err != nil {
			return nil, err
		}
	}
	return BuildInventory(categories, statuses, from, to), nil
}

// BuildInventory derives one row per category and night in [from, to).
// A room is unavailable on a night when it is under maintenance or a
// non-free status row covers the night.
func BuildInventory(categories []models.RoomCategory, statuses []models.RoomStatus, from, to time.Time) []models.RoomCategoryDay {
	byRoom := make(map[uint][]models.RoomStatus)
	for _, s := range statuses {
		if s.Status == constants.RoomStatusFree {
			continue
		}
		byRoom[s.RoomID] = append(byRoom[s.RoomID], s)
	}

	sorted := make([]models.RoomCategory, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	var out []models.RoomCategoryDay
	from, to = models.TruncateDay(from), models.TruncateDay(to)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		for _, c := range sorted {
			rec := models.RoomCategoryDay{
				Date:       models.FormatDate(day),
				CategoryID: c.Code,
				TotalRooms: len(c.Rooms),
			}
			for _, room := range c.Rooms {
				if room.Status != constants.RoomStatusMaintenance && !blocked(byRoom[room.RoomId], day) {
					rec.AvailableRooms++
				}
			}
			out = append(out, rec)
		}
	}
	return out
}

func blocked(statuses []models.RoomStatus, day time.Time) bool {
	for _, s := range statuses {
		if s.Covers(day) {
			return true
		}
	}
	return false
}
