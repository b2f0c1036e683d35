// Package repository 提供数据访问层的具体实现
// 本文件实现 RaidRepository 接口，处理副本相关的数据库操作
package repository

import (
	"albion_raid_server/internal/model"

	"gorm.io/gorm"
)

// raidRepository RaidRepository 接口的实现
type raidRepository struct {
	db *gorm.DB
}

// NewRaidRepository 创建 RaidRepository 实例
func NewRaidRepository(db *gorm.DB) RaidRepository {
	return &raidRepository{db: db}
}

// FindByUuid 根据 UUID 查找副本（不含坑位）
func (r *raidRepository) FindByUuid(uuid string) (*model.Raid, error) {
	var raid model.Raid
	if err := r.db.First(&raid, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询副本 uuid=%s", uuid)
	}
	return &raid, nil
}

// FindByUuidWithSlots 根据 UUID 查找副本并预加载坑位
// 坑位按 sort_order 升序返回
func (r *raidRepository) FindByUuidWithSlots(uuid string) (*model.Raid, error) {
	var raid model.Raid
	err := r.db.Preload("Slots", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&raid, "uuid = ?", uuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询副本（含坑位） uuid=%s", uuid)
	}
	return &raid, nil
}

// FindByFilter 按条件查找副本，按开始时间升序
// From/To 为闭区间
func (r *raidRepository) FindByFilter(filter RaidFilter, withSlots bool) ([]model.Raid, error) {
	query := r.db.Model(&model.Raid{})
	if filter.CommunityUuid != "" {
		query = query.Where("community_uuid = ?", filter.CommunityUuid)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.RosterMode != nil {
		query = query.Where("roster_mode = ?", *filter.RosterMode)
	}
	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType)
	}
	if filter.From != nil {
		query = query.Where("time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("time <= ?", *filter.To)
	}
	if withSlots {
		query = query.Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
	}

	var raids []model.Raid
	if err := query.Order("time ASC").Find(&raids).Error; err != nil {
		return nil, wrapDBError(err, "按条件查询副本")
	}
	return raids, nil
}

// Create 创建副本
func (r *raidRepository) Create(raid *model.Raid) error {
	if err := r.db.Create(raid).Error; err != nil {
		return wrapDBError(err, "创建副本")
	}
	return nil
}

// Update 更新副本信息（全字段更新）
func (r *raidRepository) Update(raid *model.Raid) error {
	if err := r.db.Save(raid).Error; err != nil {
		return wrapDBError(err, "更新副本")
	}
	return nil
}

// UpdateFields 按字段更新副本
// updates 的 key 为数据库列名，值原样写入
func (r *raidRepository) UpdateFields(uuid string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Raid{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新副本字段 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByUuid 软删除副本
// 坑位的级联删除由 Service 层在同一事务内调用 SlotRepository 完成
func (r *raidRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Raid{}).Error; err != nil {
		return wrapDBErrorf(err, "删除副本 uuid=%s", uuid)
	}
	return nil
}
