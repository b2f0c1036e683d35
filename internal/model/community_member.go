package model

import "gorm.io/gorm"

// CommunityMember 社区成员关联表
// 分配坑位前通过本表确认玩家确实是该社区成员
type CommunityMember struct {
	gorm.Model
	CommunityUuid string `gorm:"type:char(20);index;not null;comment:社区ID"`
	PlayerUuid    string `gorm:"type:char(20);index;not null;comment:玩家ID"`
	Role          int8   `gorm:"default:1;comment:1普通成员 2管理员 3创建者"`
}

func (CommunityMember) TableName() string {
	return "community_member"
}
