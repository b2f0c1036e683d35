// Package repository 提供数据访问层的具体实现
// 本文件实现 CommunityRepository 接口，处理社区相关的数据库操作
package repository

import (
	"albion_raid_server/internal/model"

	"gorm.io/gorm"
)

// communityRepository CommunityRepository 接口的实现
type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository 创建 CommunityRepository 实例
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

// FindByUuid 根据 UUID 查找社区
func (r *communityRepository) FindByUuid(uuid string) (*model.Community, error) {
	var community model.Community
	if err := r.db.First(&community, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询社区 uuid=%s", uuid)
	}
	return &community, nil
}

// ExistsByUuid 判断社区是否存在
func (r *communityRepository) ExistsByUuid(uuid string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Community{}).Where("uuid = ?", uuid).Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询社区是否存在 uuid=%s", uuid)
	}
	return count > 0, nil
}

// Create 创建社区
func (r *communityRepository) Create(community *model.Community) error {
	if err := r.db.Create(community).Error; err != nil {
		return wrapDBError(err, "创建社区")
	}
	return nil
}

// IncrementMemberCount 增加成员计数
// 使用 UpdateColumn + gorm.Expr 实现原子自增
func (r *communityRepository) IncrementMemberCount(uuid string) error {
	if err := r.db.Model(&model.Community{}).Where("uuid = ?", uuid).UpdateColumn("member_cnt", gorm.Expr("member_cnt + ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "增加社区成员数 uuid=%s", uuid)
	}
	return nil
}
