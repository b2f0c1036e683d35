// Package contenttype 提供内容类型的静态配置表
// 表在进程启动时构建一次，之后只读，不依赖数据库
package contenttype

import (
	"albion_raid_server/pkg/enum/raid/roster_mode_enum"
)

// Info 一种内容类型的配置
// MaxPlayers 为 0 表示 FLEX 模式不设人数上限
type Info struct {
	Key             string `json:"key"`             // 内容类型标识
	Label           string `json:"label"`           // 展示名
	MinPlayers      int    `json:"minPlayers"`      // 最小编队人数（FIXED 模式预生成坑位数）
	MaxPlayers      int    `json:"maxPlayers"`      // 最大编队人数，0 表示不限
	RosterMode      int8   `json:"rosterMode"`      // 阵容模式，见 roster_mode_enum
	DefaultLocation string `json:"defaultLocation"` // 默认集合地点
	Active          bool   `json:"active"`          // 是否在新建副本时可选
}

// registry 内容类型注册表，init 后只读
var registry = map[string]Info{
	"ROADS_OF_AVALON": {
		Key:             "ROADS_OF_AVALON",
		Label:           "阿瓦隆之路",
		MinPlayers:      7,
		MaxPlayers:      7,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "Brecilien",
		Active:          true,
	},
	"HELLGATE_2V2": {
		Key:             "HELLGATE_2V2",
		Label:           "地狱之门 2v2",
		MinPlayers:      2,
		MaxPlayers:      2,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "",
		Active:          true,
	},
	"HELLGATE_5V5": {
		Key:             "HELLGATE_5V5",
		Label:           "地狱之门 5v5",
		MinPlayers:      5,
		MaxPlayers:      5,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "",
		Active:          true,
	},
	"HELLGATE_10V10": {
		Key:             "HELLGATE_10V10",
		Label:           "地狱之门 10v10",
		MinPlayers:      10,
		MaxPlayers:      10,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "",
		Active:          true,
	},
	"AVALONIAN_DUNGEON": {
		Key:             "AVALONIAN_DUNGEON",
		Label:           "阿瓦隆副本",
		MinPlayers:      20,
		MaxPlayers:      20,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "",
		Active:          true,
	},
	"GROUP_DUNGEON": {
		Key:             "GROUP_DUNGEON",
		Label:           "组队副本",
		MinPlayers:      2,
		MaxPlayers:      20,
		RosterMode:      roster_mode_enum.FLEX,
		DefaultLocation: "",
		Active:          true,
	},
	"OPEN_WORLD_FARMING": {
		Key:             "OPEN_WORLD_FARMING",
		Label:           "野外刷怪",
		MinPlayers:      1,
		MaxPlayers:      0, // 不限人数
		RosterMode:      roster_mode_enum.FLEX,
		DefaultLocation: "",
		Active:          true,
	},
	"GATHERING": {
		Key:             "GATHERING",
		Label:           "采集团",
		MinPlayers:      1,
		MaxPlayers:      0,
		RosterMode:      roster_mode_enum.FLEX,
		DefaultLocation: "",
		Active:          true,
	},
	// 旧版荣耀之殿改版后下线，保留记录以便展示历史副本
	"CRYSTAL_LEAGUE_LEGACY": {
		Key:             "CRYSTAL_LEAGUE_LEGACY",
		Label:           "水晶联赛（旧）",
		MinPlayers:      5,
		MaxPlayers:      5,
		RosterMode:      roster_mode_enum.FIXED,
		DefaultLocation: "",
		Active:          false,
	},
}

// Get 按标识查找内容类型，返回值和是否存在
func Get(key string) (Info, bool) {
	info, ok := registry[key]
	return info, ok
}

// ActiveList 返回所有可用于新建副本的内容类型
// 结果为拷贝，调用方可自由修改
func ActiveList() []Info {
	list := make([]Info, 0, len(registry))
	for _, info := range registry {
		if info.Active {
			list = append(list, info)
		}
	}
	return list
}

// All 返回全部内容类型（含已下线的）
func All() []Info {
	list := make([]Info, 0, len(registry))
	for _, info := range registry {
		list = append(list, info)
	}
	return list
}
