package respond

// CommunityRespond 社区响应
type CommunityRespond struct {
	CommunityId string `json:"communityId"`
	Name        string `json:"name"`
	OwnerId     string `json:"ownerId"`
	MemberCnt   int    `json:"memberCnt"`
}
