package request

// AdvanceRaidStatusRequest 推进副本状态请求（面向客户端的状态机路径）
// 仅允许状态机邻接表中列出的迁移
type AdvanceRaidStatusRequest struct {
	RaidId string `json:"raidId" binding:"required"`
	Status int8   `json:"status"`
}
