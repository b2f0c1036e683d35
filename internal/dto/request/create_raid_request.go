package request

import "time"

// CreateRaidRequest 创建副本请求
// 阵容模式和人数上限不由调用方指定，由内容类型表派生
type CreateRaidRequest struct {
	Title       string    `json:"title" binding:"required,max=64"`
	ContentType string    `json:"contentType" binding:"required"`
	Time        time.Time `json:"time" binding:"required"`
	Location    string    `json:"location" binding:"max=64"` // 留空时用内容类型的默认地点
	Description string    `json:"description" binding:"max=500"`
	Note        string    `json:"note" binding:"max=500"`
	CommunityId string    `json:"communityId" binding:"required"`
}
