package repository

import (
	"time"

	"albion_raid_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 查询条件 ====================

// RaidFilter 副本列表查询条件
// 指针字段为 nil 表示不过滤该维度；From/To 为闭区间
type RaidFilter struct {
	CommunityUuid string     // 所属社区（必须）
	Status        *int8      // 状态
	RosterMode    *int8      // 阵容模式
	ContentType   string     // 内容类型标识，空串表示不过滤
	From          *time.Time // 开始时间下界（含）
	To            *time.Time // 开始时间上界（含）
}

// ==================== Repository 接口定义 ====================

// RaidRepository 副本数据访问接口
type RaidRepository interface {
	// FindByUuid 根据 UUID 查找副本（不含坑位）
	FindByUuid(uuid string) (*model.Raid, error)
	// FindByUuidWithSlots 根据 UUID 查找副本并预加载坑位（按 sort_order 升序）
	FindByUuidWithSlots(uuid string) (*model.Raid, error)
	// FindByFilter 按条件查找副本，按开始时间升序
	FindByFilter(filter RaidFilter, withSlots bool) ([]model.Raid, error)
	// Create 创建新副本
	Create(raid *model.Raid) error
	// Update 更新副本信息（全字段更新）
	Update(raid *model.Raid) error
	// UpdateFields 按字段更新副本
	UpdateFields(uuid string, updates map[string]interface{}) error
	// SoftDeleteByUuid 软删除副本
	SoftDeleteByUuid(uuid string) error
}

// SlotRepository 坑位数据访问接口
type SlotRepository interface {
	// FindByUuid 根据 UUID 查找坑位
	FindByUuid(uuid string) (*model.RaidSlot, error)
	// FindByRaidUuid 查找副本的所有坑位，按 sort_order 升序
	FindByRaidUuid(raidUuid string) ([]model.RaidSlot, error)
	// CountByRaidUuid 统计副本当前坑位数
	CountByRaidUuid(raidUuid string) (int64, error)
	// Create 创建单个坑位
	Create(slot *model.RaidSlot) error
	// CreateBatch 批量创建坑位（FIXED 副本建副本时预生成）
	CreateBatch(slots []model.RaidSlot) error
	// Update 更新坑位（全字段更新）
	Update(slot *model.RaidSlot) error
	// UpdateFields 按字段更新坑位
	UpdateFields(uuid string, updates map[string]interface{}) error
	// UpdateOrder 更新单个坑位的顺序值
	UpdateOrder(uuid string, order int) error
	// SoftDeleteByUuid 软删除坑位
	SoftDeleteByUuid(uuid string) error
	// SoftDeleteByRaidUuid 软删除副本的全部坑位（随副本删除级联）
	SoftDeleteByRaidUuid(raidUuid string) error
}

// CommunityRepository 社区数据访问接口
type CommunityRepository interface {
	// FindByUuid 根据 UUID 查找社区
	FindByUuid(uuid string) (*model.Community, error)
	// ExistsByUuid 判断社区是否存在
	ExistsByUuid(uuid string) (bool, error)
	// Create 创建社区
	Create(community *model.Community) error
	// IncrementMemberCount 增加成员计数
	IncrementMemberCount(uuid string) error
}

// CommunityMemberRepository 社区成员数据访问接口
type CommunityMemberRepository interface {
	// IsMember 判断玩家是否是社区成员
	IsMember(communityUuid, playerUuid string) (bool, error)
	// FindByCommunityUuid 查找社区全部成员
	FindByCommunityUuid(communityUuid string) ([]model.CommunityMember, error)
	// Create 添加成员
	Create(member *model.CommunityMember) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db        *gorm.DB                  // GORM 数据库实例
	Raid      RaidRepository            // 副本 Repository
	Slot      SlotRepository            // 坑位 Repository
	Community CommunityRepository       // 社区 Repository
	Member    CommunityMemberRepository // 社区成员 Repository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:        db,
		Raid:      NewRaidRepository(db),
		Slot:      NewSlotRepository(db),
		Community: NewCommunityRepository(db),
		Member:    NewCommunityMemberRepository(db),
	}
}

// NewStubRepositories 用自定义实现组装聚合，供测试注入桩实现
// db 为空，Transaction 会退化为直接调用
func NewStubRepositories(raid RaidRepository, slot SlotRepository, community CommunityRepository, member CommunityMemberRepository) *Repositories {
	return &Repositories{
		Raid:      raid,
		Slot:      slot,
		Community: community,
		Member:    member,
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// db 为空时（测试桩）直接调用 fn，不提供事务语义
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
