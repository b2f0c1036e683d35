package constants

import "time"

const (
	RAID_CACHE_TTL      = time.Minute      // 副本详情/列表缓存有效期
	RAID_LIST_MAX_RANGE = 90 * 24 * time.Hour // 列表查询最大时间跨度
	SLOT_NAME_MAX_LEN   = 32               // 坑位名最大长度
)
