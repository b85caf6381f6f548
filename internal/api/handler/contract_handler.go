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

// ContractHandler 合同模块 HTTP 处理器（含合同类型）
type ContractHandler struct {
	contractSvc service.ContractService
}

// NewContractHandler 创建 ContractHandler
func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// ── 合同类型 ──

// CreateType 创建合同类型
// POST /api/v1/contract-types
func (h *ContractHandler) CreateType(c *gin.Context) {
	var req dto.CreateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.contractSvc.CreateType(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrContractTypeTaken) {
			response.Error(c, http.StatusConflict, 15001, "合同类型名称或编码已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListTypes 合同类型列表
// GET /api/v1/contract-types
func (h *ContractHandler) ListTypes(c *gin.Context) {
	result, err := h.contractSvc.ListTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateType 更新合同类型
// PUT /api/v1/contract-types/:id
func (h *ContractHandler) UpdateType(c *gin.Context) {
	var req dto.UpdateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.contractSvc.UpdateType(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractTypeNotFound):
			response.NotFound(c, 15002, "合同类型不存在")
		case errors.Is(err, service.ErrContractTypeTaken):
			response.Error(c, http.StatusConflict, 15001, "合同类型名称或编码已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// DeleteType 删除合同类型
// DELETE /api/v1/contract-types/:id
func (h *ContractHandler) DeleteType(c *gin.Context) {
	if err := h.contractSvc.DeleteType(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrContractTypeNotFound) {
			response.NotFound(c, 15002, "合同类型不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ── 合同 ──

// Create 创建合同
// POST /api/v1/contracts
func (h *ContractHandler) Create(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.contractSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 15003, "用户不存在")
		case errors.Is(err, service.ErrContractTypeNotFound):
			response.BadRequest(c, 15002, "合同类型不存在")
		case errors.Is(err, model.ErrContractEndDateRequired),
			errors.Is(err, model.ErrContractEndBeforeStart):
			response.BadRequest(c, 15004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get 获取合同详情
// GET /api/v1/contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	result, err := h.contractSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			response.NotFound(c, 15005, "合同不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 合同列表（分页）
// GET /api/v1/contracts
func (h *ContractHandler) List(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.contractSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// ListByUser 用户的合同列表
// GET /api/v1/users/:id/contracts
func (h *ContractHandler) ListByUser(c *gin.Context) {
	result, err := h.contractSvc.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 更新合同
// PUT /api/v1/contracts/:id
func (h *ContractHandler) Update(c *gin.Context) {
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.contractSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.NotFound(c, 15005, "合同不存在")
		case errors.Is(err, model.ErrContractEndDateRequired),
			errors.Is(err, model.ErrContractEndBeforeStart):
			response.BadRequest(c, 15004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除合同
// DELETE /api/v1/contracts/:id
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.contractSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			response.NotFound(c, 15005, "合同不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
