// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含 Redis 连接初始化逻辑
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"strconv"

	"albion_raid_server/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisClient 全局 Redis 客户端实例（包内可见）
var redisClient *redis.Client

// cacheService 全局缓存服务实例
// 未配置 Redis 时保持 nil，读写路径据此降级为直接落库
var cacheService AsyncCacheService

// Init 初始化 Redis 连接
// 配置中 host 为空时跳过初始化，缓存整体降级为不可用（可选依赖）
func Init() {
	conf := config.GetConfig()
	host := conf.RedisConfig.Host
	if host == "" {
		zap.L().Info("Redis 未配置，缓存降级为直连数据库")
		return
	}
	port := conf.RedisConfig.Port
	password := conf.RedisConfig.Password
	db := conf.RedisConfig.Db

	addr := host + ":" + strconv.Itoa(port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		// 连接池配置
		PoolSize:     50, // 最大连接数
		MinIdleConns: 15, // 最小空闲连接，与 Worker 数量匹配
	})

	// 启动 15 个 Worker，缓冲区大小 3000，多 Service 共享
	cacheService = NewRedisCache(redisClient, 15, 3000)
}

// GetCacheService 获取缓存服务实例
// 返回 AsyncCacheService 接口，供 Service 层依赖注入使用；可能为 nil
func GetCacheService() AsyncCacheService {
	return cacheService
}
