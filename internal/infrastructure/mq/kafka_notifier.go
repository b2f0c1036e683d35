// 本文件实现 RaidNotifier 的 Kafka 发布端
// 1. 封装 Kafka Writer 的初始化和关闭
// 2. 把副本快照和变更差量编码成 JSON 事件
// 3. 纯技术组件，不包含副本业务逻辑
package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	myconfig "albion_raid_server/internal/config"
	"albion_raid_server/internal/model"
	"albion_raid_server/pkg/enum/raid/raid_status_enum"
	"albion_raid_server/pkg/enum/raid/roster_mode_enum"
)

// 事件动作
const (
	ActionCreated = "raid_created"
	ActionUpdated = "raid_updated"
	ActionDeleted = "raid_deleted"
)

// RaidEvent Kafka 消息载荷
// EventId 供消费端去重；OldFields 只在更新事件中出现，
// key 为被修改字段名，值为修改前的旧值
type RaidEvent struct {
	EventId       string         `json:"eventId"`
	Action        string         `json:"action"`
	RaidUuid      string         `json:"raidUuid"`
	CommunityUuid string         `json:"communityUuid"`
	Title         string         `json:"title"`
	ContentType   string         `json:"contentType"`
	Status        string         `json:"status"`
	RosterMode    string         `json:"rosterMode"`
	Time          time.Time      `json:"time"`
	Location      string         `json:"location,omitempty"`
	OldFields     map[string]any `json:"oldFields,omitempty"`
	EmittedAt     time.Time      `json:"emittedAt"`
}

// KafkaNotifier RaidNotifier 的 Kafka 实现
type KafkaNotifier struct {
	writer       *kafka.Writer
	writeTimeout time.Duration
}

// NewKafkaNotifier 创建 Kafka 发布端
// RequireNone: 发出即不管，投递保证交给下游，与引擎的尽力而为语义一致
func NewKafkaNotifier() *KafkaNotifier {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	timeout := kafkaConfig.Timeout
	if timeout <= 0 {
		timeout = 5
	}
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(kafkaConfig.HostPort),
			Topic:                  kafkaConfig.RaidEventTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           timeout * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
		writeTimeout: timeout * time.Second,
	}
}

// Close 关闭底层 Writer
func (k *KafkaNotifier) Close() {
	if err := k.writer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

// PublishCreated 发布副本创建事件
func (k *KafkaNotifier) PublishCreated(raid *model.Raid) {
	k.publish(ActionCreated, raid, nil)
}

// PublishUpdated 发布副本更新事件
func (k *KafkaNotifier) PublishUpdated(raid *model.Raid, oldFields map[string]any) {
	k.publish(ActionUpdated, raid, oldFields)
}

// PublishDeleted 发布副本删除事件
func (k *KafkaNotifier) PublishDeleted(raid *model.Raid) {
	k.publish(ActionDeleted, raid, nil)
}

// publish 异步写入一条事件
// 以副本 uuid 为 key，同一副本的事件落在同一分区保证相对顺序
func (k *KafkaNotifier) publish(action string, raid *model.Raid, oldFields map[string]any) {
	if raid == nil {
		return
	}
	event := RaidEvent{
		EventId:       uuid.NewString(),
		Action:        action,
		RaidUuid:      raid.Uuid,
		CommunityUuid: raid.CommunityUuid,
		Title:         raid.Title,
		ContentType:   raid.ContentType,
		Status:        raid_status_enum.Name(raid.Status),
		RosterMode:    roster_mode_enum.Name(raid.RosterMode),
		Time:          raid.Time,
		Location:      raid.Location,
		OldFields:     oldFields,
		EmittedAt:     time.Now(),
	}

	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			zap.L().Error("Marshal raid event error", zap.String("raidUuid", raid.Uuid), zap.Error(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), k.writeTimeout)
		defer cancel()
		err = k.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(raid.Uuid),
			Value: data,
		})
		if err != nil {
			// 尽力而为：只记日志，不重试
			zap.L().Error("Publish raid event error",
				zap.String("action", action),
				zap.String("raidUuid", raid.Uuid),
				zap.Error(err),
			)
		}
	}()
}

var _ RaidNotifier = (*KafkaNotifier)(nil)
