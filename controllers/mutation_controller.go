package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"frontdesk/builders"
	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/middleware"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/validator"
)

type MutationController struct {
	registry    *services.GuardRegistry
	scope       services.ScopeChecker
	quietPeriod time.Duration
	now         func() time.Time
	logger      logger.Logger
}

type MutationControllerOptions struct {
	Registry *services.GuardRegistry
	// Scope is nil when the directory enforces permissions itself.
	Scope       services.ScopeChecker
	QuietPeriod time.Duration
	Now         func() time.Time
	Logger      logger.Logger
}

func NewMutationController(opts MutationControllerOptions) *MutationController {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &MutationController{
		registry:    opts.Registry,
		scope:       opts.Scope,
		quietPeriod: opts.QuietPeriod,
		now:         opts.Now,
		logger:      opts.Logger,
	}
}

// UpdateRoomStatus godoc
// @Summary Cập nhật trạng thái phòng
// @Description debounce=true gom các lần bấm liên tiếp thành một yêu cầu.
// @Tags Mutations
// @Accept json
// @Produce json
// @Param request body dto.StatusUpdateRequest true "Trạng thái mới"
// @Param debounce query bool false "Gửi sau khoảng lặng"
// @Param Idempotency-Key header string false "Khóa idempotency của client"
// @Success 200 {object} response.Response{data=dto.MutationResponse}
// @Success 202 {object} response.Response{data=dto.MutationResponse}
// @Failure 409 {object} response.Response "Phòng đang có yêu cầu chưa xong"
// @Failure 429 {object} response.Response "Gửi quá nhanh"
// @Failure 401 {object} response.Response "Phiên hết hạn"
// @Failure 403 {object} response.Response "Phòng ngoài phạm vi của nhân viên"
// @Failure 502 {object} response.Response "Directory lỗi"
// @Router /roomStatus [put]
func (mc *MutationController) UpdateRoomStatus(c *gin.Context) {
	mc.submit(c, constants.MutationStatus, "")
}

// CheckIn nhận phòng
func (mc *MutationController) CheckIn(c *gin.Context) {
	mc.submit(c, constants.MutationCheckIn, constants.StateCheckedIn)
}

// CheckOut trả phòng
func (mc *MutationController) CheckOut(c *gin.Context) {
	mc.submit(c, constants.MutationCheckOut, constants.StateCheckedOut)
}

// GetPending liệt kê các phòng đang chờ kết quả
func (mc *MutationController) GetPending(c *gin.Context) {
	guard, ok := mc.guard(c)
	if !ok {
		return
	}
	response.Success(c, dto.PendingResponse{TargetIDs: guard.Pending()})
}

// guard trả về guard của nhân viên đã xác thực; mọi quầy của cùng một
// nhân viên dùng chung guard này
func (mc *MutationController) guard(c *gin.Context) (*services.Guard, bool) {
	key := middleware.OperatorKey(c)
	if key == "" {
		response.Unauthorized(c)
		return nil, false
	}
	return mc.registry.Get(key), true
}

func (mc *MutationController) submit(c *gin.Context, kind, defaultState string) {
	guard, ok := mc.guard(c)
	if !ok {
		return
	}
	var request dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if request.DesiredState == "" {
		request.DesiredState = defaultState
	}
	if err := validator.ValidateStruct(request); err != nil {
		response.FromError(c, err)
		return
	}

	req, err := builders.NewMutationBuilder(mc.now).
		WithTarget(request.TargetID).
		WithKind(kind).
		WithDesiredState(request.DesiredState).
		WithNotes(request.Notes).
		WithIdempotencyKey(c.GetHeader("Idempotency-Key")).
		WithOrigin(middleware.SessionID(c)).
		Build()
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctx := c.Request.Context()
	if mc.scope != nil {
		if err := mc.scope.CheckScope(ctx, middleware.OperatorID(c), req.TargetID); err != nil {
			response.FromError(c, err)
			return
		}
	}
	if token := middleware.Token(c); token != "" {
		if err := services.SeedToken(ctx, guard.Sessions(), token); err != nil {
			mc.logger.Warn("Không lưu được token cho %s: %v", middleware.OperatorKey(c), err)
		}
	}

	if kind == constants.MutationStatus && isTrue(c.Query("debounce")) {
		guard.SubmitDebounced(req)
		response.Accepted(c, pendingResponse(req), mc.quietPeriod)
		return
	}

	outcome, err := guard.Submit(ctx, req)
	if err != nil {
		var throttled *apperrors.ThrottledError
		if errors.As(err, &throttled) && throttled.Parked {
			response.Accepted(c, pendingResponse(req), throttled.RetryAfter)
			return
		}
		mc.logger.Warn("Yêu cầu %s cho %s thất bại: %v", req.Kind, req.TargetID, err)
		response.FromError(c, err)
		return
	}

	state := req.DesiredState
	if outcome.Result != nil && outcome.Result.State != "" {
		state = outcome.Result.State
	}
	response.Success(c, dto.MutationResponse{
		TargetID:       req.TargetID,
		State:          state,
		IdempotencyKey: req.IdempotencyKey,
		Replayed:       outcome.Replayed,
	})
}

func pendingResponse(req models.MutationRequest) dto.MutationResponse {
	return dto.MutationResponse{
		TargetID:       req.TargetID,
		State:          string(models.MutationPending),
		IdempotencyKey: req.IdempotencyKey,
	}
}

func isTrue(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
