package request

// JoinCommunityRequest 加入社区请求
type JoinCommunityRequest struct {
	CommunityId string `json:"communityId" binding:"required"`
	PlayerId    string `json:"playerId" binding:"required"`
}
