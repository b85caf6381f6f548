package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// WeekPatternHandler 周模板模块 HTTP 处理器（含时段）
type WeekPatternHandler struct {
	patternSvc service.WeekPatternService
}

// NewWeekPatternHandler 创建 WeekPatternHandler
func NewWeekPatternHandler(patternSvc service.WeekPatternService) *WeekPatternHandler {
	return &WeekPatternHandler{patternSvc: patternSvc}
}

// Create 创建周模板
// POST /api/v1/week-patterns
func (h *WeekPatternHandler) Create(c *gin.Context) {
	var req dto.CreateWeekPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.patternSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrWeekPatternNameTaken) {
			response.Error(c, http.StatusConflict, 16001, "周模板名称已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get 获取周模板详情（含时段）
// GET /api/v1/week-patterns/:id
func (h *WeekPatternHandler) Get(c *gin.Context) {
	result, err := h.patternSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWeekPatternNotFound) {
			response.NotFound(c, 16002, "周模板不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 周模板列表
// GET /api/v1/week-patterns
func (h *WeekPatternHandler) List(c *gin.Context) {
	result, err := h.patternSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 更新周模板
// PUT /api/v1/week-patterns/:id
func (h *WeekPatternHandler) Update(c *gin.Context) {
	var req dto.UpdateWeekPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.patternSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeekPatternNotFound):
			response.NotFound(c, 16002, "周模板不存在")
		case errors.Is(err, service.ErrWeekPatternNameTaken):
			response.Error(c, http.StatusConflict, 16001, "周模板名称已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除周模板
// DELETE /api/v1/week-patterns/:id
func (h *WeekPatternHandler) Delete(c *gin.Context) {
	if err := h.patternSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWeekPatternNotFound) {
			response.NotFound(c, 16002, "周模板不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ── 时段 ──

// CreateSlot 创建周模板时段
// POST /api/v1/time-slot-patterns
func (h *WeekPatternHandler) CreateSlot(c *gin.Context) {
	var req dto.CreateTimeSlotPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.patternSvc.CreateSlot(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeekPatternNotFound):
			response.BadRequest(c, 16002, "周模板不存在")
		case errors.Is(err, model.ErrSlotEndNotAfterStart):
			response.BadRequest(c, 16003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// UpdateSlot 更新周模板时段
// PUT /api/v1/time-slot-patterns/:id
func (h *WeekPatternHandler) UpdateSlot(c *gin.Context) {
	var req dto.UpdateTimeSlotPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.patternSvc.UpdateSlot(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTimeSlotNotFound):
			response.NotFound(c, 16004, "周模板时段不存在")
		case errors.Is(err, model.ErrSlotEndNotAfterStart):
			response.BadRequest(c, 16003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// DeleteSlot 删除周模板时段
// DELETE /api/v1/time-slot-patterns/:id
func (h *WeekPatternHandler) DeleteSlot(c *gin.Context) {
	if err := h.patternSvc.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTimeSlotNotFound) {
			response.NotFound(c, 16004, "周模板时段不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
