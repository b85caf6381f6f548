package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// contextString 取认证中间件注入的字符串键，缺失或类型不符时写 401。
func contextString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetUserID 提取当前用户 ID；ok=false 时 401 已写出，调用方直接 return 即可
func MustGetUserID(c *gin.Context) (string, bool) {
	return contextString(c, "user_id")
}

// MustGetRole 提取当前用户角色
func MustGetRole(c *gin.Context) (string, bool) {
	return contextString(c, "role")
}
