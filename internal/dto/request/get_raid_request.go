package request

// GetRaidRequest 查询单个副本请求
type GetRaidRequest struct {
	RaidId    string `form:"raidId" binding:"required"`
	WithSlots bool   `form:"withSlots"`
}
