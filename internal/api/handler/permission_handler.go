package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/service"
	"github.com/epitechproject1/time-manager-staging/pkg/response"
)

// PermissionHandler 授权模块 HTTP 处理器
type PermissionHandler struct {
	permSvc service.PermissionService
}

// NewPermissionHandler 创建 PermissionHandler
func NewPermissionHandler(permSvc service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permSvc: permSvc}
}

// Grant 授予权限
// POST /api/v1/permissions
func (h *PermissionHandler) Grant(c *gin.Context) {
	grantedBy, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.permSvc.Grant(c.Request.Context(), grantedBy, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 20001, "被授权用户不存在")
		case errors.Is(err, model.ErrPermissionEndBeforeStart):
			response.BadRequest(c, 20002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListByUser 用户的授权列表
// GET /api/v1/users/:id/permissions
func (h *PermissionHandler) ListByUser(c *gin.Context) {
	result, err := h.permSvc.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Revoke 撤销授权
// DELETE /api/v1/permissions/:id
func (h *PermissionHandler) Revoke(c *gin.Context) {
	if err := h.permSvc.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPermissionNotFound) {
			response.NotFound(c, 20003, "授权不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
