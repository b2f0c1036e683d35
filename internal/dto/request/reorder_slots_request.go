package request

// ReorderSlotsRequest 批量重排坑位请求
// slotIds 必须恰好是该副本现有坑位 id 的一个排列，
// 多出或缺少的 id 会被逐个点名拒绝
type ReorderSlotsRequest struct {
	RaidId  string   `json:"raidId" binding:"required"`
	SlotIds []string `json:"slotIds" binding:"required,min=1"`
}
