// Package router 提供 HTTP 路由注册
// 本文件定义副本生命周期与坑位编排的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterRaidRoutes 注册副本相关路由
// 包括副本生命周期、坑位编排和内容类型字典
func (rt *Router) RegisterRaidRoutes(rg *gin.RouterGroup) {
	raidGroup := rg.Group("/raid")
	{
		// ===== 副本生命周期 =====
		raidGroup.POST("/createRaid", rt.handlers.Raid.CreateRaid)               // 创建副本
		raidGroup.GET("/getRaidInfo", rt.handlers.Raid.GetRaidInfo)              // 获取副本详情
		raidGroup.GET("/getRaidList", rt.handlers.Raid.GetRaidList)              // 按条件查询副本列表
		raidGroup.POST("/updateRaid", rt.handlers.Raid.UpdateRaid)               // 更新副本信息
		raidGroup.POST("/advanceRaidStatus", rt.handlers.Raid.AdvanceRaidStatus) // 推进副本状态
		raidGroup.POST("/deleteRaid", rt.handlers.Raid.DeleteRaid)               // 删除副本

		// ===== 坑位编排 =====
		slotGroup := raidGroup.Group("/slot")
		{
			slotGroup.POST("/createSlot", rt.handlers.Slot.CreateSlot)     // 创建坑位
			slotGroup.POST("/updateSlot", rt.handlers.Slot.UpdateSlot)     // 更新坑位
			slotGroup.POST("/deleteSlot", rt.handlers.Slot.DeleteSlot)     // 删除坑位
			slotGroup.POST("/reorderSlots", rt.handlers.Slot.ReorderSlots) // 批量重排坑位
		}

		// ===== 内容类型字典 =====
		raidGroup.GET("/getContentTypeList", rt.handlers.ContentType.GetContentTypeList) // 可用内容类型
	}
}
