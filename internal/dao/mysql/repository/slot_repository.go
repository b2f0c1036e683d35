// Package repository 提供数据访问层的具体实现
// 本文件实现 SlotRepository 接口，处理副本坑位相关的数据库操作
package repository

import (
	"albion_raid_server/internal/model"

	"gorm.io/gorm"
)

// slotRepository SlotRepository 接口的实现
type slotRepository struct {
	db *gorm.DB
}

// NewSlotRepository 创建 SlotRepository 实例
func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

// FindByUuid 根据 UUID 查找坑位
func (r *slotRepository) FindByUuid(uuid string) (*model.RaidSlot, error) {
	var slot model.RaidSlot
	if err := r.db.First(&slot, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询坑位 uuid=%s", uuid)
	}
	return &slot, nil
}

// FindByRaidUuid 查找副本的所有坑位，按 sort_order 升序
func (r *slotRepository) FindByRaidUuid(raidUuid string) ([]model.RaidSlot, error) {
	var slots []model.RaidSlot
	if err := r.db.Where("raid_uuid = ?", raidUuid).Order("sort_order ASC").Find(&slots).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询副本坑位 raid_uuid=%s", raidUuid)
	}
	return slots, nil
}

// CountByRaidUuid 统计副本当前坑位数
func (r *slotRepository) CountByRaidUuid(raidUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.RaidSlot{}).Where("raid_uuid = ?", raidUuid).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计副本坑位 raid_uuid=%s", raidUuid)
	}
	return count, nil
}

// Create 创建单个坑位
func (r *slotRepository) Create(slot *model.RaidSlot) error {
	if err := r.db.Create(slot).Error; err != nil {
		return wrapDBError(err, "创建坑位")
	}
	return nil
}

// CreateBatch 批量创建坑位
func (r *slotRepository) CreateBatch(slots []model.RaidSlot) error {
	if len(slots) == 0 {
		return nil
	}
	if err := r.db.Create(&slots).Error; err != nil {
		return wrapDBError(err, "批量创建坑位")
	}
	return nil
}

// Update 更新坑位（全字段更新）
func (r *slotRepository) Update(slot *model.RaidSlot) error {
	if err := r.db.Save(slot).Error; err != nil {
		return wrapDBError(err, "更新坑位")
	}
	return nil
}

// UpdateFields 按字段更新坑位
// updates 的 key 为数据库列名；显式包含 nil 值时会把列写成 NULL
// （清空已分配玩家时依赖这一点）
func (r *slotRepository) UpdateFields(uuid string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&model.RaidSlot{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新坑位字段 uuid=%s", uuid)
	}
	return nil
}

// UpdateOrder 更新单个坑位的顺序值
func (r *slotRepository) UpdateOrder(uuid string, order int) error {
	if err := r.db.Model(&model.RaidSlot{}).Where("uuid = ?", uuid).UpdateColumn("sort_order", order).Error; err != nil {
		return wrapDBErrorf(err, "更新坑位顺序 uuid=%s order=%d", uuid, order)
	}
	return nil
}

// SoftDeleteByUuid 软删除坑位
func (r *slotRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.RaidSlot{}).Error; err != nil {
		return wrapDBErrorf(err, "删除坑位 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByRaidUuid 软删除副本的全部坑位
func (r *slotRepository) SoftDeleteByRaidUuid(raidUuid string) error {
	if err := r.db.Where("raid_uuid = ?", raidUuid).Delete(&model.RaidSlot{}).Error; err != nil {
		return wrapDBErrorf(err, "删除副本全部坑位 raid_uuid=%s", raidUuid)
	}
	return nil
}
