package request

// DeleteSlotRequest 删除坑位请求
// 删除后剩余坑位的顺序会压缩回 0..n-1
type DeleteSlotRequest struct {
	RaidId string `json:"raidId" binding:"required"`
	SlotId string `json:"slotId" binding:"required"`
}
