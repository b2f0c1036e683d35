package model

import (
	"gorm.io/gorm"
)

// Community 一个游戏社区（公会/联盟）
// 副本必须归属于且仅归属于一个社区
type Community struct {
	gorm.Model
	Uuid      string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:社区唯一id"`
	Name      string `gorm:"column:name;type:varchar(40);not null;comment:社区名称"`
	OwnerUuid string `gorm:"column:owner_uuid;type:char(20);not null;comment:社区创建者uuid"`
	MemberCnt int    `gorm:"column:member_cnt;default:1;comment:成员数"`
	Status    int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.禁用"`
}

func (Community) TableName() string {
	return "community"
}
