package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"
)

const defaultResolveLimit = 3

type CategoryController struct {
	facade *services.BookingFacade
}

func NewCategoryController(facade *services.BookingFacade) *CategoryController {
	return &CategoryController{facade: facade}
}

// GetCategories godoc
// @Summary Danh sách loại phòng
// @Tags Categories
// @Produce json
// @Param name query string false "Lọc theo tên"
// @Param page query int false "Trang, bắt đầu từ 0"
// @Param limit query int false "Số bản ghi mỗi trang"
// @Success 200 {object} response.Response{data=[]dto.RoomCategoryResponse}
// @Router /categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.facade.Categories(requestContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))
	filtered := make([]dto.RoomCategoryResponse, 0, len(categories))
	for _, category := range categories {
		if nameFilter != "" && !strings.Contains(strings.ToLower(category.Name), nameFilter) {
			continue
		}
		filtered = append(filtered, category)
	}

	page := response.ParsePagination(c)
	start, end := page.Window(len(filtered))
	response.SuccessWithPagination(c, filtered[start:end], page.Page, page.Limit, len(filtered))
}

// ResolveCategory tìm loại phòng gần nhất với chữ lễ tân gõ
func (cc *CategoryController) ResolveCategory(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "q không được để trống")
		return
	}
	limit := defaultResolveLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	matches, err := cc.facade.ResolveCategory(requestContext(c), query, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if len(matches) == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, matches)
}
