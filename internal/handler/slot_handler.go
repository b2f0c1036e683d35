// Package handler 提供 HTTP 请求处理器
// 本文件处理坑位编排相关的 API 请求
package handler

import (
	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SlotHandler 坑位请求处理器
type SlotHandler struct {
	raidSvc service.RaidService
}

// NewSlotHandler 创建坑位处理器实例
func NewSlotHandler(raidSvc service.RaidService) *SlotHandler {
	return &SlotHandler{raidSvc: raidSvc}
}

// CreateSlot 创建坑位
// POST /raid/slot/createSlot
// 请求体: request.CreateSlotRequest
// 响应: respond.RaidRespond（含全部坑位）
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req request.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.CreateSlot(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateSlot 更新坑位（部分字段）
// POST /raid/slot/updateSlot
// 请求体: request.UpdateSlotRequest
// 响应: respond.RaidRespond（含全部坑位）
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	var req request.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.UpdateSlot(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSlot 删除坑位
// POST /raid/slot/deleteSlot
// 请求体: request.DeleteSlotRequest
// 响应: respond.RaidRespond（含压缩顺序后的全部坑位）
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	var req request.DeleteSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.DeleteSlot(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ReorderSlots 批量重排坑位顺序
// POST /raid/slot/reorderSlots
// 请求体: request.ReorderSlotsRequest
// 响应: respond.RaidRespond（含重排后的全部坑位）
func (h *SlotHandler) ReorderSlots(c *gin.Context) {
	var req request.ReorderSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.ReorderSlots(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
