// Package router 提供 HTTP 路由注册
// 本文件定义社区相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCommunityRoutes 注册社区相关路由
func (rt *Router) RegisterCommunityRoutes(rg *gin.RouterGroup) {
	communityGroup := rg.Group("/community")
	{
		communityGroup.POST("/createCommunity", rt.handlers.Community.CreateCommunity)  // 创建社区
		communityGroup.GET("/getCommunityInfo", rt.handlers.Community.GetCommunityInfo) // 获取社区信息
		communityGroup.POST("/joinCommunity", rt.handlers.Community.JoinCommunity)      // 加入社区
	}
}
