package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// AssignmentHandler 排班指派模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// assignmentValidationError 指派日期类校验错误统一归为 400
func assignmentValidationError(err error) bool {
	return errors.Is(err, model.ErrAssignmentEndBeforeStart) ||
		errors.Is(err, model.ErrAssignmentBeforeContract) ||
		errors.Is(err, model.ErrAssignmentEndDateRequired) ||
		errors.Is(err, model.ErrAssignmentBeyondContract)
}

// Create 创建排班指派
// POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.BadRequest(c, 17001, "合同不存在")
		case errors.Is(err, service.ErrWeekPatternNotFound):
			response.BadRequest(c, 17002, "周模板不存在")
		case assignmentValidationError(err):
			response.BadRequest(c, 17003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get 获取排班指派详情
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	result, err := h.assignmentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.NotFound(c, 17004, "排班指派不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 排班指派列表
// GET /api/v1/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assignmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 更新排班指派
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assignmentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.NotFound(c, 17004, "排班指派不存在")
		case assignmentValidationError(err):
			response.BadRequest(c, 17003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除排班指派
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.NotFound(c, 17004, "排班指派不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// GenerateShifts 将指派展开为班次（幂等）
// POST /api/v1/assignments/:id/generate-shifts
func (h *AssignmentHandler) GenerateShifts(c *gin.Context) {
	var req dto.GenerateShiftsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assignmentSvc.GenerateShifts(c.Request.Context(), c.Param("id"), req.IncludeHolidays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.NotFound(c, 17004, "排班指派不存在")
		case errors.Is(err, service.ErrAssignmentNoUser):
			response.BadRequest(c, 17005, "排班指派缺少合同或用户信息")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
