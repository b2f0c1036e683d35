package model

import (
	"time"

	"gorm.io/gorm"
)

// Raid 一次已排期的团队活动
// 阵容模式和人数上限在创建时由内容类型表派生，之后不再直接修改
type Raid struct {
	gorm.Model
	Uuid          string     `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:副本唯一id"`
	Title         string     `gorm:"column:title;type:varchar(64);not null;comment:标题"`
	Description   string     `gorm:"column:description;type:varchar(500);comment:描述"`
	Time          time.Time  `gorm:"column:time;index;not null;comment:开始时间"`
	RosterMode    int8       `gorm:"column:roster_mode;default:0;comment:阵容模式，0.FIXED，1.FLEX"`
	ContentType   string     `gorm:"column:content_type;type:varchar(40);not null;comment:内容类型标识"`
	MaxPlayers    *int       `gorm:"column:max_players;comment:最大人数，NULL 表示 FLEX 不设上限"`
	Location      string     `gorm:"column:location;type:varchar(64);comment:集合地点"`
	CommunityUuid string     `gorm:"column:community_uuid;type:char(20);index;not null;comment:所属社区uuid"`
	Status        int8       `gorm:"column:status;default:0;comment:状态，见 raid_status_enum"`
	Note          string     `gorm:"column:note;type:varchar(500);comment:备注"`
	Slots         []RaidSlot `gorm:"foreignKey:RaidUuid;references:Uuid;constraint:OnDelete:CASCADE"`
}

func (Raid) TableName() string {
	return "raid"
}
