// Package mq 提供副本变更事件的发布能力
// 引擎的每次成功变更都会向下游（如 Discord 播报机器人）发一条事件，
// 发布是尽力而为的旁路：失败只记日志，不重试，绝不影响已提交的变更
package mq

import (
	"albion_raid_server/internal/model"
)

// RaidNotifier 副本事件发布接口
// 三个方法都是异步尽力而为语义，调用方不等待投递结果
type RaidNotifier interface {
	// PublishCreated 发布副本创建事件
	PublishCreated(raid *model.Raid)
	// PublishUpdated 发布副本更新事件，oldFields 携带本次被修改字段的旧值
	PublishUpdated(raid *model.Raid, oldFields map[string]any)
	// PublishDeleted 发布副本删除事件，携带删除前的最终快照
	PublishDeleted(raid *model.Raid)
}

// NoopNotifier 空实现
// 未配置 Kafka 时注入，所有发布调用直接丢弃
type NoopNotifier struct{}

func (NoopNotifier) PublishCreated(raid *model.Raid)                            {}
func (NoopNotifier) PublishUpdated(raid *model.Raid, oldFields map[string]any) {}
func (NoopNotifier) PublishDeleted(raid *model.Raid)                            {}

var _ RaidNotifier = NoopNotifier{}
