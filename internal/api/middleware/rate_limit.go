package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/pkg/redis"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// RateLimit 限流中间件（基于 Redis 滑动窗口）
// 按「用户 ID + 路由」维度限流；未认证请求退化为按 IP 限流。
// Redis 不可用时降级放行。
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		identity := c.GetString("user_id")
		if identity == "" {
			identity = c.ClientIP()
		}
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), identity)

		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis 出错时不阻断业务
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, 429, 10004, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
