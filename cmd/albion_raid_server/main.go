package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"albion_raid_server/internal/config"
	dao "albion_raid_server/internal/dao/mysql"
	myredis "albion_raid_server/internal/dao/redis"
	"albion_raid_server/internal/handler"
	"albion_raid_server/internal/http_server"
	"albion_raid_server/internal/infrastructure/logger"
	"albion_raid_server/internal/infrastructure/mq"
	"albion_raid_server/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis（host 留空则缓存降级，读路径直连数据库）
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化事件发布器（hostPort 留空则降级为空实现）
	var notifier mq.RaidNotifier = mq.NoopNotifier{}
	var kafkaNotifier *mq.KafkaNotifier
	if conf.KafkaConfig.HostPort != "" {
		kafkaNotifier = mq.NewKafkaNotifier()
		notifier = kafkaNotifier
		zap.L().Info("Kafka 事件发布器初始化成功")
	} else {
		zap.L().Info("未配置 Kafka，副本变更事件降级为空操作")
	}

	// 6. 初始化 Service 层（依赖注入）
	service.InitServices(dao.Repos, myredis.GetCacheService(), notifier)
	zap.L().Info("Service 层初始化成功")

	// 7. 初始化 HTTP 服务器
	engine := http_server.Init(handler.NewHandlers(service.Svc))
	zap.L().Info("HTTP 服务器初始化成功")

	// 8. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit
	zap.L().Info("关闭服务器...")

	if kafkaNotifier != nil {
		kafkaNotifier.Close()
	}

	zap.L().Info("服务器已关闭")
}
