// Package raid_status_enum 定义副本状态常量及状态机
package raid_status_enum

// 副本状态
// SCHEDULED -> OPEN -> CLOSED -> ONGOING -> FINISHED
// CANCELLED 可从 SCHEDULED/OPEN/CLOSED/ONGOING 到达
// FINISHED 和 CANCELLED 为终态
const (
	SCHEDULED int8 = iota // 已排期（初始状态）
	OPEN                  // 报名开放
	CLOSED                // 报名截止
	ONGOING               // 进行中
	FINISHED              // 已结束（终态）
	CANCELLED             // 已取消（终态）
)

// transitions 面向客户端操作的状态迁移表
// 注意：通用更新接口不校验此表，任意状态值都可直接写入（保留管理员改写能力）
// 该表只约束 AdvanceRaidStatus 这类面向客户端的状态推进操作
var transitions = map[int8][]int8{
	SCHEDULED: {OPEN, CANCELLED},
	OPEN:      {CLOSED, CANCELLED},
	CLOSED:    {ONGOING, CANCELLED},
	ONGOING:   {FINISHED, CANCELLED},
	FINISHED:  {},
	CANCELLED: {},
}

// NextStatuses 返回指定状态允许推进到的状态列表
func NextStatuses(status int8) []int8 {
	next, ok := transitions[status]
	if !ok {
		return nil
	}
	out := make([]int8, len(next))
	copy(out, next)
	return out
}

// CanTransition 判断 from -> to 是否是状态机允许的迁移
func CanTransition(from, to int8) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal 判断是否为终态
func IsTerminal(status int8) bool {
	return status == FINISHED || status == CANCELLED
}

// Composable 判断该状态下是否允许编辑坑位
// 规划中或暂停时可编辑，开打后和结束后不可编辑
func Composable(status int8) bool {
	switch status {
	case SCHEDULED, OPEN, CLOSED:
		return true
	default:
		return false
	}
}

// IsValid 判断是否为合法状态值
func IsValid(status int8) bool {
	return status >= SCHEDULED && status <= CANCELLED
}

// names 状态名，用于日志和事件载荷
var names = map[int8]string{
	SCHEDULED: "SCHEDULED",
	OPEN:      "OPEN",
	CLOSED:    "CLOSED",
	ONGOING:   "ONGOING",
	FINISHED:  "FINISHED",
	CANCELLED: "CANCELLED",
}

// Name 返回状态名，未知状态返回 "UNKNOWN"
func Name(status int8) string {
	if name, ok := names[status]; ok {
		return name
	}
	return "UNKNOWN"
}
