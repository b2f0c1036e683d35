package request

// CreateCommunityRequest 创建社区请求
type CreateCommunityRequest struct {
	Name    string `json:"name" binding:"required,max=40"`
	OwnerId string `json:"ownerId" binding:"required"`
}
