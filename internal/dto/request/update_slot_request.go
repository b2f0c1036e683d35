package request

// UpdateSlotRequest 更新坑位请求（部分字段更新）
// 指针字段为 nil 表示不修改；指向空串表示清空该字段
// playerId 指向空串时同时清空分配时间戳，指向非空值时引擎会校验
// 该玩家是所属社区的成员并写入分配时间戳
type UpdateSlotRequest struct {
	RaidId   string  `json:"raidId" binding:"required"`
	SlotId   string  `json:"slotId" binding:"required"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Comment  *string `json:"comment"`
	PlayerId *string `json:"playerId"`
	Weapon   *string `json:"weapon"`
	BuildId  *string `json:"buildId"`
	Order    *int    `json:"order"`
}
