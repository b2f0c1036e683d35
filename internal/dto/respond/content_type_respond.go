package respond

// ContentTypeRespond 内容类型响应（新建副本表单用）
type ContentTypeRespond struct {
	Key             string `json:"key"`
	Label           string `json:"label"`
	MinPlayers      int    `json:"minPlayers"`
	MaxPlayers      int    `json:"maxPlayers"` // 0 表示不限人数
	RosterMode      int8   `json:"rosterMode"`
	DefaultLocation string `json:"defaultLocation"`
}
