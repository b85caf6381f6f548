package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// ClockHandler 打卡模块 HTTP 处理器
type ClockHandler struct {
	clockSvc service.ClockService
}

// NewClockHandler 创建 ClockHandler
func NewClockHandler(clockSvc service.ClockService) *ClockHandler {
	return &ClockHandler{clockSvc: clockSvc}
}

// ClockIn 发起上班打卡，返回待验证的一次性验证码
// POST /api/v1/clock-events/clock-in
func (h *ClockHandler) ClockIn(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.clockSvc.ClockIn(c.Request.Context(), userID, &req)
	if err != nil {
		h.writePunchError(c, err)
		return
	}

	response.Created(c, result)
}

// ClockOut 发起下班打卡
// POST /api/v1/clock-events/clock-out
func (h *ClockHandler) ClockOut(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.clockSvc.ClockOut(c.Request.Context(), userID, &req)
	if err != nil {
		h.writePunchError(c, err)
		return
	}

	response.Created(c, result)
}

// Submit 提交验证码
// POST /api/v1/clock-validations/submit
//
// 核销结果与 HTTP 状态的对应：
//   - 无待验证的验证码 → 404
//   - 过期 / 码错误     → 200，Success=false（事件已被拒，原因在 detail）
//   - 验证通过          → 200，Success=true
func (h *ClockHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.clockSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoPendingCode) {
			response.NotFound(c, 19001, "没有待验证的打卡验证码")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListMyEvents 个人打卡事件列表
// GET /api/v1/clock-events/my
func (h *ClockHandler) ListMyEvents(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ClockEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.clockSvc.ListMyEvents(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// writePunchError 打卡前置检查错误统一映射
func (h *ClockHandler) writePunchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 19002, "班次不存在")
	case errors.Is(err, service.ErrShiftNotOwned):
		response.Forbidden(c, 19003, "只能在自己的班次上打卡")
	case errors.Is(err, service.ErrShiftNotPunchable):
		response.BadRequest(c, 19004, "该班次类型不可打卡")
	case errors.Is(err, service.ErrAlreadyClockedIn):
		response.Error(c, http.StatusConflict, 19005, "该班次已有上班打卡记录")
	case errors.Is(err, service.ErrAlreadyClockedOut):
		response.Error(c, http.StatusConflict, 19006, "该班次已有下班打卡记录")
	case errors.Is(err, service.ErrClockInNotApproved):
		response.BadRequest(c, 19007, "上班打卡尚未验证通过，不能下班打卡")
	default:
		response.InternalError(c)
	}
}
