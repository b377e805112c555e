package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if _, err := uuid.Parse(sessionId); err != nil {
			// Tạo sessionId mới
			sessionId = uuid.NewString()
		}

		c.Set(KeySessionID, sessionId)
		c.Writer.Header().Set("X-Session-ID", sessionId)

		c.Next()
	}
}

// SessionID đọc sessionId từ context
func SessionID(c *gin.Context) string {
	return c.GetString(KeySessionID)
}

// Token đọc token đã xác thực từ context
func Token(c *gin.Context) string {
	return c.GetString(KeyToken)
}

// OperatorID đọc id nhân viên đã xác thực, 0 nếu request chưa qua AuthMiddleware
func OperatorID(c *gin.Context) uint {
	value, ok := c.Get(KeyOperatorID)
	if !ok {
		return 0
	}
	id, _ := value.(uint)
	return id
}

// OperatorKey định danh nhân viên đã xác thực, rỗng nếu chưa xác thực
func OperatorKey(c *gin.Context) string {
	id := OperatorID(c)
	if id == 0 {
		return ""
	}
	return "operator:" + strconv.FormatUint(uint64(id), 10)
}
