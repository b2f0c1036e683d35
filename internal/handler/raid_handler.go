// Package handler 提供 HTTP 请求处理器
// 本文件处理副本生命周期相关的 API 请求
package handler

import (
	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RaidHandler 副本请求处理器
// 通过构造函数注入 RaidService，遵循依赖倒置原则
type RaidHandler struct {
	raidSvc service.RaidService
}

// NewRaidHandler 创建副本处理器实例
func NewRaidHandler(raidSvc service.RaidService) *RaidHandler {
	return &RaidHandler{raidSvc: raidSvc}
}

// CreateRaid 创建副本
// POST /raid/createRaid
// 请求体: request.CreateRaidRequest
// 响应: respond.RaidRespond（含预生成的坑位）
func (h *RaidHandler) CreateRaid(c *gin.Context) {
	var req request.CreateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.CreateRaid(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRaidInfo 查询单个副本
// GET /raid/getRaidInfo?raidId=xxx&withSlots=true
// 查询参数: request.GetRaidRequest
// 响应: respond.RaidRespond
func (h *RaidHandler) GetRaidInfo(c *gin.Context) {
	var req request.GetRaidRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.GetRaidInfo(req.RaidId, req.WithSlots)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRaidList 按条件查询副本列表
// GET /raid/getRaidList?communityId=xxx&status=1&from=...&to=...
// 查询参数: request.GetRaidListRequest
// 响应: []respond.RaidRespond（按开始时间升序）
func (h *RaidHandler) GetRaidList(c *gin.Context) {
	var req request.GetRaidListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.GetRaidList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateRaid 更新副本（部分字段）
// POST /raid/updateRaid
// 请求体: request.UpdateRaidRequest
// 响应: respond.RaidRespond
func (h *RaidHandler) UpdateRaid(c *gin.Context) {
	var req request.UpdateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.UpdateRaid(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AdvanceRaidStatus 推进副本状态
// POST /raid/advanceRaidStatus
// 请求体: request.AdvanceRaidStatusRequest
// 响应: respond.RaidRespond
func (h *RaidHandler) AdvanceRaidStatus(c *gin.Context) {
	var req request.AdvanceRaidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.raidSvc.AdvanceRaidStatus(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteRaid 删除副本（坑位级联删除）
// POST /raid/deleteRaid
// 请求体: request.DeleteRaidRequest
// 响应: nil
func (h *RaidHandler) DeleteRaid(c *gin.Context) {
	var req request.DeleteRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.raidSvc.DeleteRaid(req.RaidId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
