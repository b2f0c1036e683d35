package respond

import "time"

// SlotRespond 坑位响应
type SlotRespond struct {
	SlotId     string     `json:"slotId"`
	Name       string     `json:"name"`
	Role       *string    `json:"role"`
	Comment    *string    `json:"comment"`
	PlayerId   *string    `json:"playerId"`
	Weapon     *string    `json:"weapon"`
	BuildId    *string    `json:"buildId"`
	Order      int        `json:"order"`
	AssignedAt *time.Time `json:"assignedAt"`
}

// RaidRespond 副本响应
// Slots 仅在请求带坑位时返回；NextStatuses 为客户端可推进的状态列表
type RaidRespond struct {
	RaidId       string        `json:"raidId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Time         time.Time     `json:"time"`
	RosterMode   int8          `json:"rosterMode"`
	ContentType  string        `json:"contentType"`
	MaxPlayers   *int          `json:"maxPlayers"`
	Location     string        `json:"location"`
	CommunityId  string        `json:"communityId"`
	Status       int8          `json:"status"`
	StatusName   string        `json:"statusName"`
	Note         string        `json:"note"`
	NextStatuses []int8        `json:"nextStatuses"`
	Slots        []SlotRespond `json:"slots,omitempty"`
}
