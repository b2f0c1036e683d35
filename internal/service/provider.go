// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"albion_raid_server/internal/dao/mysql/repository"
	myredis "albion_raid_server/internal/dao/redis"
	"albion_raid_server/internal/infrastructure/mq"
	"albion_raid_server/internal/service/community"
	"albion_raid_server/internal/service/raid"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Raid      RaidService      // 副本 Service
	Community CommunityService // 社区 Service
	Gate      PermissionGate   // 权限网关（外部协作方，默认放行）
}

// NewServices 创建并注入所有 Service 实例
// repos: Repository 层聚合实例
// cacheService: 缓存服务，可为 nil（读路径降级为直连数据库）
// notifier: 事件发布器，可为 nil（发布降级为空操作）
func NewServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, notifier mq.RaidNotifier) *Services {
	raidSvc := raid.NewRaidService(repos, cacheService, notifier)
	communitySvc := community.NewCommunityService(repos, cacheService)

	return &Services{
		Raid:      raidSvc,
		Community: communitySvc,
		Gate:      AllowAllGate{},
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Raid.CreateRaid() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository/Redis/Kafka 初始化之后
func InitServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, notifier mq.RaidNotifier) {
	Svc = NewServices(repos, cacheService, notifier)
}
