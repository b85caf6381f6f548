package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 客户端传入的 Request ID 最大长度，防止日志注入超长内容
const requestIDMaxLen = 64

// RequestID 请求 ID 中间件
// 优先沿用客户端传入的 X-Request-ID，否则生成新的 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > requestIDMaxLen {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
