// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/dto/respond"
)

// RaidService 副本生命周期与坑位编排接口
// 所有变更操作遵循同一纪律：校验 -> 单事务持久化 -> 提交后异步
// 缓存失效 + 事件发布（旁路失败只记日志，不影响结果）
type RaidService interface {
	// CreateRaid 创建副本；FIXED 类型按最小编队人数预生成坑位
	CreateRaid(req request.CreateRaidRequest) (*respond.RaidRespond, error)
	// GetRaidInfo 查询单个副本，可选携带坑位（cache-aside，TTL 约 60s）
	GetRaidInfo(raidId string, withSlots bool) (*respond.RaidRespond, error)
	// GetRaidList 按条件查询副本列表，按开始时间升序（cache-aside）
	GetRaidList(req request.GetRaidListRequest) ([]respond.RaidRespond, error)
	// UpdateRaid 部分字段更新；status 原样写入，不校验状态机邻接
	UpdateRaid(req request.UpdateRaidRequest) (*respond.RaidRespond, error)
	// AdvanceRaidStatus 面向客户端的状态推进，仅允许状态机列出的迁移
	AdvanceRaidStatus(req request.AdvanceRaidStatusRequest) (*respond.RaidRespond, error)
	// DeleteRaid 删除副本，坑位级联删除
	DeleteRaid(raidId string) error
	// CreateSlot 创建坑位，顺序追加到末尾；要求副本处于可编辑状态
	CreateSlot(req request.CreateSlotRequest) (*respond.RaidRespond, error)
	// UpdateSlot 部分字段更新坑位；分配玩家时校验社区成员身份
	UpdateSlot(req request.UpdateSlotRequest) (*respond.RaidRespond, error)
	// DeleteSlot 删除坑位并压缩剩余顺序值
	DeleteSlot(req request.DeleteSlotRequest) (*respond.RaidRespond, error)
	// ReorderSlots 按给定 id 列表整体重排坑位顺序
	ReorderSlots(req request.ReorderSlotsRequest) (*respond.RaidRespond, error)
}

// CommunityService 社区业务接口
// 副本引擎消费的"社区存在性/成员身份"检查背后的数据由本服务维护
type CommunityService interface {
	// CreateCommunity 创建社区，创建者自动成为成员
	CreateCommunity(req request.CreateCommunityRequest) (*respond.CommunityRespond, error)
	// GetCommunityInfo 查询社区信息（cache-aside）
	GetCommunityInfo(communityId string) (*respond.CommunityRespond, error)
	// JoinCommunity 玩家加入社区
	JoinCommunity(req request.JoinCommunityRequest) error
}

// PermissionGate 权限网关接口（外部协作方）
// 本引擎只消费判定结果，不实现权限解析；未注入时使用放行实现
type PermissionGate interface {
	// Allowed 判断玩家是否有权在社区内执行指定动作
	Allowed(ctx context.Context, communityId, playerId, action string) (bool, error)
}

// AllowAllGate PermissionGate 的放行实现（默认注入）
type AllowAllGate struct{}

func (AllowAllGate) Allowed(ctx context.Context, communityId, playerId, action string) (bool, error) {
	return true, nil
}

var _ PermissionGate = AllowAllGate{}
