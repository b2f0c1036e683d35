package request

// DeleteRaidRequest 删除副本请求（坑位随副本级联删除）
type DeleteRaidRequest struct {
	RaidId string `json:"raidId" binding:"required"`
}
