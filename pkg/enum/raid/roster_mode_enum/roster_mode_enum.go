// Package roster_mode_enum 定义副本阵容模式常量
package roster_mode_enum

// 阵容模式
// FIXED: 建副本时按内容类型的最小人数预生成固定坑位
// FLEX: 坑位按需逐个添加，人数可以不设上限
const (
	FIXED int8 = iota // 固定阵容
	FLEX              // 弹性阵容
)

// Name 返回模式名，未知值返回 "UNKNOWN"
func Name(mode int8) string {
	switch mode {
	case FIXED:
		return "FIXED"
	case FLEX:
		return "FLEX"
	default:
		return "UNKNOWN"
	}
}

// IsValid 判断是否为合法模式值
func IsValid(mode int8) bool {
	return mode == FIXED || mode == FLEX
}
