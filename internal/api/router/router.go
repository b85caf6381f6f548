package router

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/epitechproject1/time-manager-staging/config"
	"github.com/epitechproject1/time-manager-staging/internal/api/handler"
	"github.com/epitechproject1/time-manager-staging/internal/api/middleware"
	"github.com/epitechproject1/time-manager-staging/pkg/jwt"
	"github.com/epitechproject1/time-manager-staging/pkg/redis"
)

// 请求体大小上限（1 MiB，本服务无文件上传接口）
const maxBodyBytes = 1 << 20

// 验证码提交接口限流：每用户每分钟最多 10 次
const (
	submitRateLimit  = 10
	submitRateWindow = time.Minute
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// registerValidators 注册自定义参数校验器
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// hhmm: 零填充的 "HH:MM" 时刻字符串
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return hhmmRe.MatchString(fl.Field().String())
		})
	}
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidators()

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)

			// 密码重置（匿名 + 限流，按 IP 计数）
			reset := auth.Group("/password-reset")
			reset.Use(middleware.RateLimit(rdb, submitRateLimit, submitRateWindow))
			{
				reset.POST("/request", h.Auth.RequestPasswordReset)
				reset.POST("/verify", h.Auth.VerifyPasswordReset)
				reset.POST("/confirm", h.Auth.ConfirmPasswordReset)
			}
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.POST("/auth/register", middleware.RoleAuth("admin"), h.Auth.Register)

			// 用户模块
			users := authorized.Group("/users")
			{
				users.GET("", middleware.RoleAuth("admin", "manager"), h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", middleware.RoleAuth("admin"), h.User.Update)
				users.PUT("/:id/role", middleware.RoleAuth("admin"), h.User.AssignRole)
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.Delete)
				users.GET("/:id/contracts", middleware.RoleAuth("admin", "manager"), h.Contract.ListByUser)
				users.GET("/:id/permissions", middleware.RoleAuth("admin", "manager"), h.Permission.ListByUser)
			}

			// 部门模块
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.List)
				departments.GET("/:id", h.Department.Get)
				departments.POST("", middleware.RoleAuth("admin"), h.Department.Create)
				departments.PUT("/:id", middleware.RoleAuth("admin"), h.Department.Update)
				departments.DELETE("/:id", middleware.RoleAuth("admin"), h.Department.Delete)
			}

			// 团队模块
			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.List)
				teams.GET("/:id", h.Team.Get)
				teams.POST("", middleware.RoleAuth("admin", "manager"), h.Team.Create)
				teams.PUT("/:id", middleware.RoleAuth("admin", "manager"), h.Team.Update)
				teams.DELETE("/:id", middleware.RoleAuth("admin"), h.Team.Delete)
			}

			// 合同类型模块
			contractTypes := authorized.Group("/contract-types")
			{
				contractTypes.GET("", h.Contract.ListTypes)
				contractTypes.POST("", middleware.RoleAuth("admin"), h.Contract.CreateType)
				contractTypes.PUT("/:id", middleware.RoleAuth("admin"), h.Contract.UpdateType)
				contractTypes.DELETE("/:id", middleware.RoleAuth("admin"), h.Contract.DeleteType)
			}

			// 合同模块
			contracts := authorized.Group("/contracts")
			contracts.Use(middleware.RoleAuth("admin", "manager"))
			{
				contracts.GET("", h.Contract.List)
				contracts.GET("/:id", h.Contract.Get)
				contracts.POST("", h.Contract.Create)
				contracts.PUT("/:id", h.Contract.Update)
				contracts.DELETE("/:id", h.Contract.Delete)
			}

			// 周模板模块
			weekPatterns := authorized.Group("/week-patterns")
			{
				weekPatterns.GET("", h.WeekPattern.List)
				weekPatterns.GET("/:id", h.WeekPattern.Get)
				weekPatterns.POST("", middleware.RoleAuth("admin", "manager"), h.WeekPattern.Create)
				weekPatterns.PUT("/:id", middleware.RoleAuth("admin", "manager"), h.WeekPattern.Update)
				weekPatterns.DELETE("/:id", middleware.RoleAuth("admin", "manager"), h.WeekPattern.Delete)
			}

			// 周模板时段模块
			slotPatterns := authorized.Group("/time-slot-patterns")
			slotPatterns.Use(middleware.RoleAuth("admin", "manager"))
			{
				slotPatterns.POST("", h.WeekPattern.CreateSlot)
				slotPatterns.PUT("/:id", h.WeekPattern.UpdateSlot)
				slotPatterns.DELETE("/:id", h.WeekPattern.DeleteSlot)
			}

			// 排班分配模块
			assignments := authorized.Group("/assignments")
			assignments.Use(middleware.RoleAuth("admin", "manager"))
			{
				assignments.GET("", h.Assignment.List)
				assignments.GET("/:id", h.Assignment.Get)
				assignments.POST("", h.Assignment.Create)
				assignments.PUT("/:id", h.Assignment.Update)
				assignments.DELETE("/:id", h.Assignment.Delete)
				assignments.POST("/:id/generate-shifts", h.Assignment.GenerateShifts)
			}

			// 班次模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("/my", h.Shift.MyShifts)
				shifts.GET("/my/ical", h.Shift.MyICalFeed)
				shifts.GET("", middleware.RoleAuth("admin", "manager"), h.Shift.List)
				shifts.GET("/:id", h.Shift.Get)
				shifts.POST("", middleware.RoleAuth("admin", "manager"), h.Shift.Create)
				shifts.PUT("/:id", middleware.RoleAuth("admin", "manager"), h.Shift.Update)
				shifts.DELETE("/:id", middleware.RoleAuth("admin", "manager"), h.Shift.Delete)
			}

			// 打卡模块
			clock := authorized.Group("/clock-events")
			{
				clock.POST("/clock-in", h.Clock.ClockIn)
				clock.POST("/clock-out", h.Clock.ClockOut)
				clock.GET("/my", h.Clock.ListMyEvents)
			}
			authorized.POST("/clock-validations/submit",
				middleware.RateLimit(rdb, submitRateLimit, submitRateWindow),
				h.Clock.Submit)

			// 权限委托模块
			permissions := authorized.Group("/permissions")
			permissions.Use(middleware.RoleAuth("admin", "manager"))
			{
				permissions.POST("", h.Permission.Grant)
				permissions.DELETE("/:id", h.Permission.Revoke)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/shifts", middleware.RoleAuth("admin", "manager"), h.Export.ExportShifts)
			}
		}
	}

	return r
}
