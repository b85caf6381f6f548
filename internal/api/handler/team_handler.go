package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// TeamHandler 团队模块 HTTP 处理器
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler 创建 TeamHandler
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// Create 创建团队
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.teamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 14001, "负责人不存在")
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.BadRequest(c, 14002, "部门不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get 获取团队详情
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	result, err := h.teamSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 14003, "团队不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 团队列表
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	var req dto.TeamListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.teamSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 更新团队
// PUT /api/v1/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.teamSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 14003, "团队不存在")
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 14001, "负责人不存在")
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.BadRequest(c, 14002, "部门不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除团队
// DELETE /api/v1/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 14003, "团队不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
