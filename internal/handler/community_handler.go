// Package handler 提供 HTTP 请求处理器
// 本文件处理社区相关的 API 请求
package handler

import (
	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/service"
	"albion_raid_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CommunityHandler 社区请求处理器
type CommunityHandler struct {
	communitySvc service.CommunityService
}

// NewCommunityHandler 创建社区处理器实例
func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

// CreateCommunity 创建社区
// POST /community/createCommunity
// 请求体: request.CreateCommunityRequest
// 响应: respond.CommunityRespond
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	var req request.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.communitySvc.CreateCommunity(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCommunityInfo 查询社区信息
// GET /community/getCommunityInfo?communityId=xxx
// 响应: respond.CommunityRespond
func (h *CommunityHandler) GetCommunityInfo(c *gin.Context) {
	communityId := c.Query("communityId")
	if communityId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.communitySvc.GetCommunityInfo(communityId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// JoinCommunity 玩家加入社区
// POST /community/joinCommunity
// 请求体: request.JoinCommunityRequest
// 响应: nil
func (h *CommunityHandler) JoinCommunity(c *gin.Context) {
	var req request.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.communitySvc.JoinCommunity(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
