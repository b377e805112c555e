package controllers

import (
	"github.com/gin-gonic/gin"

	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"
)

type BillingController struct {
	facade *services.BookingFacade
}

func NewBillingController(facade *services.BookingFacade) *BillingController {
	return &BillingController{facade: facade}
}

// Quote godoc
// @Summary Báo giá lưu trú
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Thông tin báo giá"
// @Success 200 {object} response.Response{data=dto.BillingResponse}
// @Failure 400 {object} response.Response
// @Router /billing/quote [post]
func (bc *BillingController) Quote(c *gin.Context) {
	var request dto.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(request); err != nil {
		response.FromError(c, err)
		return
	}

	breakdown, err := bc.facade.Quote(requestContext(c), request)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewBillingResponse(breakdown))
}

// Settle godoc
// @Summary Thanh toán khi trả phòng
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.SettleRequest true "Báo giá và số tiền đã thu"
// @Success 200 {object} response.Response{data=dto.BillingResponse}
// @Failure 400 {object} response.Response
// @Router /billing/settle [post]
func (bc *BillingController) Settle(c *gin.Context) {
	var request dto.SettleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(request); err != nil {
		response.FromError(c, err)
		return
	}

	breakdown, err := bc.facade.Settle(requestContext(c), request)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewBillingResponse(breakdown))
}
