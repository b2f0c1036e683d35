package model

import (
	"time"

	"gorm.io/gorm"
)

// RaidSlot 副本阵容中的一个坑位
// SortOrder 在同一副本内从 0 开始连续且不重复
// AssignedAt 当且仅当 PlayerUuid 非空时非空
type RaidSlot struct {
	gorm.Model
	Uuid       string     `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:坑位唯一id"`
	RaidUuid   string     `gorm:"column:raid_uuid;type:char(20);index;not null;comment:所属副本uuid"`
	Name       string     `gorm:"column:name;type:varchar(32);not null;comment:坑位名"`
	Role       *string    `gorm:"column:role;type:varchar(32);comment:职责标签，如 TANK/HEALER"`
	Comment    *string    `gorm:"column:comment;type:varchar(200);comment:备注"`
	PlayerUuid *string    `gorm:"column:player_uuid;type:char(20);index;comment:已分配玩家uuid（弱引用）"`
	Weapon     *string    `gorm:"column:weapon;type:varchar(64);comment:武器/配装引用"`
	BuildUuid  *string    `gorm:"column:build_uuid;type:char(20);comment:关联配装方案uuid"`
	SortOrder  int        `gorm:"column:sort_order;not null;comment:展示/优先级顺序，从0开始"`
	AssignedAt *time.Time `gorm:"column:assigned_at;comment:玩家分配时间"`
}

func (RaidSlot) TableName() string {
	return "raid_slot"
}
