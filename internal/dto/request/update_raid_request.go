package request

import "time"

// UpdateRaidRequest 更新副本请求（部分字段更新）
// 指针字段为 nil 表示不修改；status 原样写入，不校验状态机邻接
// （保留管理员改写能力，面向客户端的推进走 AdvanceRaidStatusRequest）
type UpdateRaidRequest struct {
	RaidId      string     `json:"raidId" binding:"required"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Time        *time.Time `json:"time"`
	Location    *string    `json:"location"`
	Status      *int8      `json:"status"`
	Note        *string    `json:"note"`
}
