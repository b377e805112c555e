package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// MutationCommand định nghĩa interface cho các command thay đổi trạng thái phòng
type MutationCommand interface {
	Execute(ctx context.Context) (*models.MutationResult, error)
}

// NewMutationCommand chọn command theo loại yêu cầu
func NewMutationCommand(db *gorm.DB, req models.MutationRequest) (MutationCommand, error) {
	roomID, err := ParseTargetID(req.TargetID)
	if err != nil {
		return nil, err
	}
	status, ok := constants.RoomStateFor(req.DesiredState)
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("trạng thái không hợp lệ: %q", req.DesiredState), nil)
	}

	base := baseCommand{db: db, roomID: roomID, req: req, status: status, now: time.Now}
	switch req.Kind {
	case constants.MutationStatus, "":
		return &UpdateStatusCommand{base}, nil
	case constants.MutationCheckIn:
		return &CheckInCommand{base}, nil
	case constants.MutationCheckOut:
		return &CheckOutCommand{base}, nil
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("loại yêu cầu không hợp lệ: %q", req.Kind), nil)
}

// ParseTargetID accepts "12" or "room-12".
func ParseTargetID(targetID string) (uint, error) {
	s := strings.TrimPrefix(strings.TrimSpace(targetID), "room-")
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("mã phòng không hợp lệ: %q", targetID), err)
	}
	return uint(id), nil
}

type baseCommand struct {
	db     *gorm.DB
	roomID uint
	req    models.MutationRequest
	status int
	now    func() time.Time
}

func (c baseCommand) result() *models.MutationResult {
	return &models.MutationResult{TargetID: c.req.TargetID, State: c.req.DesiredState}
}

func (c baseCommand) setRoomStatus(tx *gorm.DB) error {
	room := models.Room{RoomId: c.roomID, Status: c.status}
	if err := room.ValidateStatus(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "trạng thái phòng không hợp lệ", err)
	}
	res := tx.Model(&models.Room{}).Where("room_id = ?", c.roomID).Update("status", c.status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("không tìm thấy phòng %d", c.roomID), nil)
	}
	return nil
}

// UpdateStatusCommand command để cập nhật trạng thái phòng
type UpdateStatusCommand struct {
	baseCommand
}

func (c *UpdateStatusCommand) Execute(ctx context.Context) (*models.MutationResult, error) {
	if err := c.setRoomStatus(c.db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return c.result(), nil
}

// CheckInCommand command để nhận phòng: khóa phòng cho đêm nay
type CheckInCommand struct {
	baseCommand
}

func (c *CheckInCommand) Execute(ctx context.Context) (*models.MutationResult, error) {
	today := models.TruncateDay(c.now())
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := c.setRoomStatus(tx); err != nil {
			return err
		}
		return tx.Create(&models.RoomStatus{
			RoomID:   c.roomID,
			FromDate: today,
			ToDate:   today.AddDate(0, 0, 1),
			Status:   constants.RoomStatusBooked,
			Notes:    c.req.Notes,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return c.result(), nil
}

// CheckOutCommand command để trả phòng: kết thúc các dòng trạng thái đang mở
type CheckOutCommand struct {
	baseCommand
}

func (c *CheckOutCommand) Execute(ctx context.Context) (*models.MutationResult, error) {
	today := models.TruncateDay(c.now())
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := c.setRoomStatus(tx); err != nil {
			return err
		}
		return tx.Model(&models.RoomStatus{}).
			Where("room_id = ? AND from_date <= ? AND to_date > ? AND status = ?", c.roomID, today, today, constants.RoomStatusBooked).
			Update("to_date", today).Error
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return c.result(), nil
}
