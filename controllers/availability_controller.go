package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

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

type AvailabilityController struct {
	facade *services.BookingFacade
	rdb    *redis.Client
	logger logger.Logger
}

type AvailabilityControllerOptions struct {
	Facade *services.BookingFacade
	Redis  *redis.Client
	Logger logger.Logger
}

func NewAvailabilityController(opts AvailabilityControllerOptions) *AvailabilityController {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &AvailabilityController{
		facade: opts.Facade,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// GetMonthlyAvailability godoc
// @Summary Lịch phòng theo tháng
// @Tags Availability
// @Produce json
// @Param year query int true "Năm"
// @Param month query int true "Tháng"
// @Param categoryId query string false "Loại phòng, mặc định all"
// @Success 200 {object} response.Response{data=dto.AvailabilityResponse}
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /availability [get]
func (ac *AvailabilityController) GetMonthlyAvailability(c *gin.Context) {
	var query dto.MonthlyAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Tham số không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(query); err != nil {
		response.FromError(c, err)
		return
	}
	category := categoryOrAll(query.CategoryID)

	days, err := ac.facade.MonthCalendar(requestContext(c), query.Year, time.Month(query.Month), category)
	if err != nil {
		ac.logger.Error("Lấy lịch tháng %d/%d thất bại: %v", query.Month, query.Year, err)
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.AvailabilityResponse{
		Year:       query.Year,
		Month:      query.Month,
		CategoryID: category,
		Days:       days,
	})
}

// GetDateOccupancy trả về tỷ lệ lấp đầy của một ngày
func (ac *AvailabilityController) GetDateOccupancy(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.BadRequest(c, "date không được để trống")
		return
	}
	date, err := models.ParseInputDate(dateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng date")
		return
	}

	day, err := ac.facade.DateOccupancy(requestContext(c), date, categoryOrAll(c.Query("categoryId")))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, day)
}

// GetConflicts godoc
// @Summary Kiểm tra xung đột cho khoảng lưu trú
// @Description Trường bỏ trống lấy từ truy vấn trước đó của cùng phiên (X-Session-ID).
// @Tags Availability
// @Produce json
// @Param checkIn query string true "Ngày nhận phòng (02/01/2006)"
// @Param checkOut query string true "Ngày trả phòng (02/01/2006)"
// @Param categoryId query string false "Loại phòng"
// @Param alternates query int false "Số khoảng thay thế cần gợi ý"
// @Success 200 {object} response.Response{data=dto.ConflictResponse}
// @Failure 400 {object} response.Response
// @Router /conflicts [get]
func (ac *AvailabilityController) GetConflicts(c *gin.Context) {
	var query dto.ConflictQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Tham số không hợp lệ")
		return
	}

	ctx := requestContext(c)
	sessionID := middleware.SessionID(c)
	last, err := services.GetLastQuery(ctx, ac.rdb, sessionID)
	if err != nil {
		ac.logger.Warn("Không đọc được truy vấn trước của phiên %s: %v", sessionID, err)
	}
	query = services.MergeQuery(last, query)

	if err := validator.ValidateStruct(query); err != nil {
		response.FromError(c, err)
		return
	}
	window, err := models.ParseStayWindow(query.CheckIn, query.CheckOut, categoryOrAll(query.CategoryID))
	if err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Sai định dạng ngày, dùng dd/mm/yyyy", err))
		return
	}

	report, alternates, err := ac.facade.CheckConflicts(ctx, window, query.Alternates)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := services.SaveLastQuery(ctx, ac.rdb, sessionID, query); err != nil {
		ac.logger.Warn("Không lưu được truy vấn của phiên %s: %v", sessionID, err)
	}

	response.Success(c, dto.ConflictResponse{
		Report:     report,
		Summary:    report.Summary(),
		Alternates: alternates,
	})
}

func categoryOrAll(id string) string {
	if id = strings.TrimSpace(id); id == "" {
		return constants.CategoryAll
	}
	return id
}

// requestContext attaches the operator token for directory reads.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token := middleware.Token(c); token != "" {
		ctx = services.WithToken(ctx, token)
	}
	return ctx
}
