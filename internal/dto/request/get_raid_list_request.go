package request

import "time"

// GetRaidListRequest 副本列表查询请求
// 指针字段为 nil 表示不过滤该维度；from/to 为闭区间，RFC3339 格式
type GetRaidListRequest struct {
	CommunityId string     `form:"communityId" binding:"required"`
	Status      *int8      `form:"status"`
	RosterMode  *int8      `form:"rosterMode"`
	ContentType string     `form:"contentType"`
	From        *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	WithSlots   bool       `form:"withSlots"`
}
