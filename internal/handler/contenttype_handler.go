// Package handler 提供 HTTP 请求处理器
// 本文件处理内容类型字典的 API 请求
package handler

import (
	"time"

	"albion_raid_server/internal/contenttype"
	myredis "albion_raid_server/internal/dao/redis"
	"albion_raid_server/internal/dto/respond"

	"github.com/gin-gonic/gin"
)

// ContentTypeHandler 内容类型字典处理器
// 字典是进程内静态表，响应列表进程内记忆化即可，不走 Redis
type ContentTypeHandler struct {
	activeList *myredis.Memoized[[]respond.ContentTypeRespond]
}

// NewContentTypeHandler 创建内容类型处理器实例
func NewContentTypeHandler() *ContentTypeHandler {
	return &ContentTypeHandler{
		activeList: myredis.NewMemoized(10*time.Minute, time.Hour, func() ([]respond.ContentTypeRespond, error) {
			infos := contenttype.ActiveList()
			list := make([]respond.ContentTypeRespond, 0, len(infos))
			for _, info := range infos {
				list = append(list, respond.ContentTypeRespond{
					Key:             info.Key,
					Label:           info.Label,
					MinPlayers:      info.MinPlayers,
					MaxPlayers:      info.MaxPlayers,
					RosterMode:      info.RosterMode,
					DefaultLocation: info.DefaultLocation,
				})
			}
			return list, nil
		}),
	}
}

// GetContentTypeList 获取可用内容类型列表（新建副本表单用）
// GET /raid/getContentTypeList
// 响应: []respond.ContentTypeRespond
func (h *ContentTypeHandler) GetContentTypeList(c *gin.Context) {
	data, err := h.activeList.Get()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
