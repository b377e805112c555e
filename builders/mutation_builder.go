package builders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// MutationBuilder giúp tạo MutationRequest theo từng bước
type MutationBuilder struct {
	req models.MutationRequest
	now func() time.Time
}

// NewMutationBuilder tạo instance mới của MutationBuilder
func NewMutationBuilder(now func() time.Time) *MutationBuilder {
	if now == nil {
		now = time.Now
	}
	return &MutationBuilder{
		req: models.MutationRequest{Kind: constants.MutationStatus},
		now: now,
	}
}

// WithTarget thêm mã phòng
func (b *MutationBuilder) WithTarget(targetID string) *MutationBuilder {
	b.req.TargetID = strings.TrimSpace(targetID)
	return b
}

// WithKind thêm loại yêu cầu
func (b *MutationBuilder) WithKind(kind string) *MutationBuilder {
	b.req.Kind = kind
	return b
}

// WithDesiredState thêm trạng thái mong muốn
func (b *MutationBuilder) WithDesiredState(state string) *MutationBuilder {
	b.req.DesiredState = strings.ToLower(strings.TrimSpace(state))
	return b
}

// WithNotes thêm ghi chú
func (b *MutationBuilder) WithNotes(notes string) *MutationBuilder {
	b.req.Notes = strings.TrimSpace(notes)
	return b
}

// WithIdempotencyKey reuses a key supplied by the client.
func (b *MutationBuilder) WithIdempotencyKey(key string) *MutationBuilder {
	b.req.IdempotencyKey = strings.TrimSpace(key)
	return b
}

// WithOrigin ghi lại phiên lễ tân đã gửi yêu cầu
func (b *MutationBuilder) WithOrigin(sessionID string) *MutationBuilder {
	b.req.Origin = sessionID
	return b
}

// Build validates the request and stamps IssuedAt and a fresh idempotency key.
func (b *MutationBuilder) Build() (models.MutationRequest, error) {
	req := b.req
	if req.TargetID == "" {
		return req, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "targetId là bắt buộc", nil)
	}
	if _, ok := constants.RoomStateFor(req.DesiredState); !ok {
		return req, apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("trạng thái không hợp lệ: %q", req.DesiredState), nil)
	}
	switch req.Kind {
	case constants.MutationStatus:
	case constants.MutationCheckIn:
		if req.DesiredState != constants.StateCheckedIn && req.DesiredState != constants.StateOccupied {
			return req, apperrors.NewAppError(apperrors.ErrCodeValidation, "check-in chỉ chấp nhận checked-in hoặc occupied", nil)
		}
	case constants.MutationCheckOut:
		if req.DesiredState != constants.StateCheckedOut && req.DesiredState != constants.StateCleaning {
			return req, apperrors.NewAppError(apperrors.ErrCodeValidation, "check-out chỉ chấp nhận checked-out hoặc cleaning", nil)
		}
	default:
		return req, apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("loại yêu cầu không hợp lệ: %q", req.Kind), nil)
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	req.IssuedAt = b.now()
	return req, nil
}
