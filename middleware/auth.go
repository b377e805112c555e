package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
)

// Context keys
const (
	KeyOperatorID = "operatorID"
	KeyRole       = "userRole"
	KeyToken      = "token"
	KeySessionID  = "sessionId"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware(secret string, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := services.GetOperatorFromToken(tokenString, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin nhân viên vào context
		c.Set(KeyOperatorID, claims.OperatorID)
		c.Set(KeyRole, claims.Role)
		c.Set(KeyToken, tokenString)
		c.Next()
	}
}

// RoleMiddleware kiểm tra role của user
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(KeyRole)
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role, _ := userRole.(int)
		if !hasRole(role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler xử lý lỗi controller đẩy vào c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if apperrors.IsAppError(err) || apperrors.HTTPStatus(err) != 500 {
			response.FromError(c, err)
			return
		}
		response.ServerError(c)
	}
}

func hasRole(role int, roles []int) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
