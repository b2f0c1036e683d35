package request

// CreateSlotRequest 创建坑位请求（仅 FLEX 副本或补位场景）
// 顺序自动追加到末尾；名称必填，其余可选
type CreateSlotRequest struct {
	RaidId   string  `json:"raidId" binding:"required"`
	Name     string  `json:"name" binding:"required,max=32"`
	Role     *string `json:"role"`
	Comment  *string `json:"comment"`
	PlayerId *string `json:"playerId"`
	Weapon   *string `json:"weapon"`
	BuildId  *string `json:"buildId"`
}
