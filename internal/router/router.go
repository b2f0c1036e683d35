// Package router 提供 HTTP 路由注册
// 本文件定义路由管理器，聚合所有子模块的路由
package router

import (
	"albion_raid_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
// 持有 Handler 聚合实例，各子模块的路由注册方法挂在它上面
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 http_server.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	rt.RegisterRaidRoutes(api)      // 副本与坑位路由
	rt.RegisterCommunityRoutes(api) // 社区路由
}
