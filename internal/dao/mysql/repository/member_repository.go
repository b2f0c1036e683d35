// Package repository 提供数据访问层的具体实现
// 本文件实现 CommunityMemberRepository 接口
package repository

import (
	"albion_raid_server/internal/model"

	"gorm.io/gorm"
)

// communityMemberRepository CommunityMemberRepository 接口的实现
type communityMemberRepository struct {
	db *gorm.DB
}

// NewCommunityMemberRepository 创建 CommunityMemberRepository 实例
func NewCommunityMemberRepository(db *gorm.DB) CommunityMemberRepository {
	return &communityMemberRepository{db: db}
}

// IsMember 判断玩家是否是社区成员
func (r *communityMemberRepository) IsMember(communityUuid, playerUuid string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CommunityMember{}).
		Where("community_uuid = ? AND player_uuid = ?", communityUuid, playerUuid).
		Count(&count).Error
	if err != nil {
		return false, wrapDBErrorf(err, "查询社区成员 community=%s player=%s", communityUuid, playerUuid)
	}
	return count > 0, nil
}

// FindByCommunityUuid 查找社区全部成员
func (r *communityMemberRepository) FindByCommunityUuid(communityUuid string) ([]model.CommunityMember, error) {
	var members []model.CommunityMember
	if err := r.db.Where("community_uuid = ?", communityUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询社区成员列表 community=%s", communityUuid)
	}
	return members, nil
}

// Create 添加成员
func (r *communityMemberRepository) Create(member *model.CommunityMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "添加社区成员")
	}
	return nil
}
