package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// DepartmentHandler 部门模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// Create 创建部门
// POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.BadRequest(c, 13001, "负责人不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get 获取部门详情
// GET /api/v1/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	result, err := h.deptSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.NotFound(c, 13002, "部门不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 部门列表
// GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	result, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 更新部门
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.deptSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.NotFound(c, 13002, "部门不存在")
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 13001, "负责人不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除部门
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.deptSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.NotFound(c, 13002, "部门不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
