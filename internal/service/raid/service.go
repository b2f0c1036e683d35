// Package raid 实现副本生命周期与坑位编排引擎
// 每个变更操作都遵循同一纪律：
//  1. 校验状态和输入，失败同步返回错误，不产生任何副作用
//  2. 单个数据库事务内完成多行写入
//  3. 事务提交后通过异步 Worker 做缓存失效和事件发布，
//     旁路失败只记日志，绝不回滚已提交的变更
package raid

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"albion_raid_server/internal/contenttype"
	"albion_raid_server/internal/dao/mysql/repository"
	myredis "albion_raid_server/internal/dao/redis"
	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/dto/respond"
	"albion_raid_server/internal/infrastructure/mq"
	"albion_raid_server/internal/model"
	"albion_raid_server/pkg/constants"
	"albion_raid_server/pkg/enum/raid/raid_status_enum"
	"albion_raid_server/pkg/enum/raid/roster_mode_enum"
	"albion_raid_server/pkg/errorx"
	"albion_raid_server/pkg/util/random"
)

// raidService 副本业务逻辑实现
// 通过构造函数注入 Repository、Cache 和事件发布依赖
type raidService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	notifier mq.RaidNotifier
}

// NewRaidService 构造函数，注入所有依赖
// cache 为 nil 时读路径直连数据库；notifier 为 nil 时降级为空实现
func NewRaidService(repos *repository.Repositories, cacheService myredis.AsyncCacheService, notifier mq.RaidNotifier) *raidService {
	if notifier == nil {
		notifier = mq.NoopNotifier{}
	}
	return &raidService{
		repos:    repos,
		cache:    cacheService,
		notifier: notifier,
	}
}

// ==================== 缓存键 ====================

func raidInfoKey(raidUuid string, withSlots bool) string {
	if withSlots {
		return "raid_info_" + raidUuid + "_slots"
	}
	return "raid_info_" + raidUuid
}

// raidListKey 由社区 id + 过滤条件的稳定哈希构成
// 同一社区的列表缓存共享前缀，写路径按前缀整体失效
func raidListKey(req request.GetRaidListRequest) string {
	var sb strings.Builder
	if req.Status != nil {
		fmt.Fprintf(&sb, "s=%d;", *req.Status)
	}
	if req.RosterMode != nil {
		fmt.Fprintf(&sb, "m=%d;", *req.RosterMode)
	}
	if req.ContentType != "" {
		fmt.Fprintf(&sb, "c=%s;", req.ContentType)
	}
	if req.From != nil {
		fmt.Fprintf(&sb, "f=%d;", req.From.Unix())
	}
	if req.To != nil {
		fmt.Fprintf(&sb, "t=%d;", req.To.Unix())
	}
	if req.WithSlots {
		sb.WriteString("w=1;")
	}
	h := fnv.New32a()
	h.Write([]byte(sb.String()))
	return fmt.Sprintf("raid_list_%s_%08x", req.CommunityId, h.Sum32())
}

// flushRaidCaches 异步失效副本详情缓存和所属社区的全部列表缓存
// 在事务提交之后调用，失败只记日志
func (s *raidService) flushRaidCaches(raidUuid, communityUuid string) {
	if s.cache == nil {
		return
	}
	s.cache.SubmitTask(func() {
		ctx := context.Background()
		if err := s.cache.Delete(ctx, raidInfoKey(raidUuid, false)); err != nil {
			zap.L().Error(err.Error())
		}
		if err := s.cache.Delete(ctx, raidInfoKey(raidUuid, true)); err != nil {
			zap.L().Error(err.Error())
		}
		if err := s.cache.DeleteByPattern(ctx, "raid_list_"+communityUuid+"_*"); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// flushCommunityListCaches 仅失效社区列表缓存（创建副本时详情键还不存在）
func (s *raidService) flushCommunityListCaches(communityUuid string) {
	if s.cache == nil {
		return
	}
	s.cache.SubmitTask(func() {
		if err := s.cache.DeleteByPattern(context.Background(), "raid_list_"+communityUuid+"_*"); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// ==================== 响应构建 ====================

func buildSlotRespond(slot *model.RaidSlot) respond.SlotRespond {
	return respond.SlotRespond{
		SlotId:     slot.Uuid,
		Name:       slot.Name,
		Role:       slot.Role,
		Comment:    slot.Comment,
		PlayerId:   slot.PlayerUuid,
		Weapon:     slot.Weapon,
		BuildId:    slot.BuildUuid,
		Order:      slot.SortOrder,
		AssignedAt: slot.AssignedAt,
	}
}

func buildRaidRespond(raid *model.Raid, withSlots bool) *respond.RaidRespond {
	rsp := &respond.RaidRespond{
		RaidId:       raid.Uuid,
		Title:        raid.Title,
		Description:  raid.Description,
		Time:         raid.Time,
		RosterMode:   raid.RosterMode,
		ContentType:  raid.ContentType,
		MaxPlayers:   raid.MaxPlayers,
		Location:     raid.Location,
		CommunityId:  raid.CommunityUuid,
		Status:       raid.Status,
		StatusName:   raid_status_enum.Name(raid.Status),
		Note:         raid.Note,
		NextStatuses: raid_status_enum.NextStatuses(raid.Status),
	}
	if withSlots {
		// 使用 make 初始化 len=0，确保序列化后是 [] 而不是 null
		slots := make([]respond.SlotRespond, 0, len(raid.Slots))
		for i := range raid.Slots {
			slots = append(slots, buildSlotRespond(&raid.Slots[i]))
		}
		rsp.Slots = slots
	}
	return rsp
}

// ==================== 副本生命周期 ====================

// CreateRaid 创建副本
// FIXED 内容类型在同一事务内按最小编队人数预生成 "Slot 1..N" 坑位；
// 坑位批量插入失败只记日志，不回滚副本本身（刻意容忍的局部失败，
// 组织者可以事后手动补坑位）
func (s *raidService) CreateRaid(req request.CreateRaidRequest) (*respond.RaidRespond, error) {
	// 1. 校验社区存在
	exists, err := s.repos.Community.ExistsByUuid(req.CommunityId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !exists {
		return nil, errorx.Newf(errorx.CodeNotFound, "社区 %s 不存在", req.CommunityId)
	}

	// 2. 从内容类型表派生阵容模式和人数上限
	info, ok := contenttype.Get(req.ContentType)
	if !ok {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "未知的内容类型 %s", req.ContentType)
	}
	if !info.Active {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "内容类型 %s 已下线", req.ContentType)
	}

	location := req.Location
	if location == "" {
		location = info.DefaultLocation
	}
	var maxPlayers *int
	if info.MaxPlayers > 0 {
		mp := info.MaxPlayers
		maxPlayers = &mp
	}

	raid := model.Raid{
		Uuid:          fmt.Sprintf("R%s", random.GetNowAndLenRandomString(11)),
		Title:         req.Title,
		Description:   req.Description,
		Time:          req.Time,
		RosterMode:    info.RosterMode,
		ContentType:   info.Key,
		MaxPlayers:    maxPlayers,
		Location:      location,
		CommunityUuid: req.CommunityId,
		Status:        raid_status_enum.SCHEDULED,
		Note:          req.Note,
	}

	// 3. 事务：插入副本，FIXED 模式预生成坑位
	var provisioned []model.RaidSlot
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Raid.Create(&raid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if info.RosterMode == roster_mode_enum.FIXED {
			slots := make([]model.RaidSlot, 0, info.MinPlayers)
			for i := 0; i < info.MinPlayers; i++ {
				slots = append(slots, model.RaidSlot{
					Uuid:      fmt.Sprintf("S%s", random.GetNowAndLenRandomString(11)),
					RaidUuid:  raid.Uuid,
					Name:      fmt.Sprintf("Slot %d", i+1),
					SortOrder: i,
				})
			}
			if err := txRepos.Slot.CreateBatch(slots); err != nil {
				// 坑位预生成失败不回滚副本创建
				zap.L().Error("预生成坑位失败，副本保留",
					zap.String("raidUuid", raid.Uuid), zap.Error(err))
				return nil
			}
			provisioned = slots
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. 事务提交后：异步失效列表缓存 + 发布创建事件
	s.flushCommunityListCaches(req.CommunityId)
	s.notifier.PublishCreated(&raid)

	raid.Slots = provisioned
	return buildRaidRespond(&raid, true), nil
}

// GetRaidInfo 查询单个副本（cache-aside）
func (s *raidService) GetRaidInfo(raidId string, withSlots bool) (*respond.RaidRespond, error) {
	key := raidInfoKey(raidId, withSlots)
	return myredis.WithCache(context.Background(), s.cache, key, constants.RAID_CACHE_TTL, func() (*respond.RaidRespond, error) {
		var raid *model.Raid
		var err error
		if withSlots {
			raid, err = s.repos.Raid.FindByUuidWithSlots(raidId)
		} else {
			raid, err = s.repos.Raid.FindByUuid(raidId)
		}
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.ErrRaidNotFound
			}
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		return buildRaidRespond(raid, withSlots), nil
	})
}

// GetRaidList 按条件查询副本列表（cache-aside），按开始时间升序
func (s *raidService) GetRaidList(req request.GetRaidListRequest) ([]respond.RaidRespond, error) {
	if req.From != nil && req.To != nil {
		if req.To.Before(*req.From) {
			return nil, errorx.New(errorx.CodeInvalidParam, "时间区间上界早于下界")
		}
		if req.To.Sub(*req.From) > constants.RAID_LIST_MAX_RANGE {
			return nil, errorx.Newf(errorx.CodeInvalidParam, "时间区间最大 %d 天", int(constants.RAID_LIST_MAX_RANGE.Hours()/24))
		}
	}

	key := raidListKey(req)
	return myredis.WithCache(context.Background(), s.cache, key, constants.RAID_CACHE_TTL, func() ([]respond.RaidRespond, error) {
		filter := repository.RaidFilter{
			CommunityUuid: req.CommunityId,
			Status:        req.Status,
			RosterMode:    req.RosterMode,
			ContentType:   req.ContentType,
			From:          req.From,
			To:            req.To,
		}
		raids, err := s.repos.Raid.FindByFilter(filter, req.WithSlots)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		list := make([]respond.RaidRespond, 0, len(raids))
		for i := range raids {
			list = append(list, *buildRaidRespond(&raids[i], req.WithSlots))
		}
		return list, nil
	})
}

// UpdateRaid 部分字段更新副本
// 提供的字段原样写入，status 不校验状态机邻接（保留管理员改写路径）；
// 更新事件携带被修改字段的旧值
func (s *raidService) UpdateRaid(req request.UpdateRaidRequest) (*respond.RaidRespond, error) {
	// 1. 读取旧值用于差量（副本已不存在则 NOT_FOUND）
	raid, err := s.repos.Raid.FindByUuid(req.RaidId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrRaidNotFound
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 2. 只收集被修改字段的旧值和新值
	updates := make(map[string]interface{})
	oldFields := make(map[string]any)
	if req.Title != nil {
		oldFields["title"] = raid.Title
		updates["title"] = *req.Title
		raid.Title = *req.Title
	}
	if req.Description != nil {
		oldFields["description"] = raid.Description
		updates["description"] = *req.Description
		raid.Description = *req.Description
	}
	if req.Time != nil {
		oldFields["time"] = raid.Time
		updates["time"] = *req.Time
		raid.Time = *req.Time
	}
	if req.Location != nil {
		oldFields["location"] = raid.Location
		updates["location"] = *req.Location
		raid.Location = *req.Location
	}
	if req.Status != nil {
		if !raid_status_enum.IsValid(*req.Status) {
			return nil, errorx.Newf(errorx.CodeInvalidParam, "非法状态值 %d", *req.Status)
		}
		oldFields["status"] = raid_status_enum.Name(raid.Status)
		updates["status"] = *req.Status
		raid.Status = *req.Status
	}
	if req.Note != nil {
		oldFields["note"] = raid.Note
		updates["note"] = *req.Note
		raid.Note = *req.Note
	}
	if len(updates) == 0 {
		return buildRaidRespond(raid, false), nil
	}

	// 3. 写库
	if err := s.repos.Raid.UpdateFields(req.RaidId, updates); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 4. 异步失效缓存 + 发布更新事件（携带旧值差量）
	s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
	s.notifier.PublishUpdated(raid, oldFields)

	return buildRaidRespond(raid, false), nil
}

// AdvanceRaidStatus 面向客户端的状态推进
// 只允许状态机邻接表中列出的迁移；终态副本无法推进
func (s *raidService) AdvanceRaidStatus(req request.AdvanceRaidStatusRequest) (*respond.RaidRespond, error) {
	raid, err := s.repos.Raid.FindByUuid(req.RaidId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrRaidNotFound
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if !raid_status_enum.CanTransition(raid.Status, req.Status) {
		return nil, errorx.Newf(errorx.CodeInvalidState, "不允许从 %s 推进到 %s",
			raid_status_enum.Name(raid.Status), raid_status_enum.Name(req.Status))
	}

	status := req.Status
	return s.UpdateRaid(request.UpdateRaidRequest{
		RaidId: req.RaidId,
		Status: &status,
	})
}

// DeleteRaid 删除副本，坑位在同一事务内级联删除
// 删除事件携带删除前的完整快照
func (s *raidService) DeleteRaid(raidId string) error {
	raid, err := s.repos.Raid.FindByUuidWithSlots(raidId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.ErrRaidNotFound
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Slot.SoftDeleteByRaidUuid(raidId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Raid.SoftDeleteByUuid(raidId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
	s.notifier.PublishDeleted(raid)
	return nil
}

// ==================== 坑位编排 ====================

// loadComposableRaid 加载副本并校验处于可编辑状态
// 每次坑位变更都重新查库校验，不信任调用方缓存的状态
// （UI 读取和后续写入之间状态可能已被他人推进）
func (s *raidService) loadComposableRaid(raidId string) (*model.Raid, error) {
	raid, err := s.repos.Raid.FindByUuid(raidId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrRaidNotFound
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !raid_status_enum.Composable(raid.Status) {
		return nil, errorx.Newf(errorx.CodeInvalidState, "副本状态 %s 不允许编辑坑位",
			raid_status_enum.Name(raid.Status))
	}
	return raid, nil
}

// slotChangedEvent 坑位变更沿用副本更新事件通道
func (s *raidService) slotChangedEvent(raid *model.Raid, slotUuid, action string) {
	s.notifier.PublishUpdated(raid, map[string]any{
		"slotUuid":   slotUuid,
		"slotAction": action,
	})
}

// refreshedRespond 坑位变更后重新加载父副本（含坑位）构建响应
func (s *raidService) refreshedRespond(raidId string) (*respond.RaidRespond, error) {
	raid, err := s.repos.Raid.FindByUuidWithSlots(raidId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return buildRaidRespond(raid, true), nil
}

// CreateSlot 创建坑位
// 顺序追加到当前坑位数的位置；返回含全部坑位的父副本
func (s *raidService) CreateSlot(req request.CreateSlotRequest) (*respond.RaidRespond, error) {
	raid, err := s.loadComposableRaid(req.RaidId)
	if err != nil {
		return nil, err
	}

	count, err := s.repos.Slot.CountByRaidUuid(req.RaidId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	slot := model.RaidSlot{
		Uuid:      fmt.Sprintf("S%s", random.GetNowAndLenRandomString(11)),
		RaidUuid:  req.RaidId,
		Name:      req.Name,
		Role:      req.Role,
		Comment:   req.Comment,
		Weapon:    req.Weapon,
		BuildUuid: req.BuildId,
		SortOrder: int(count),
	}
	// 创建时直接带玩家的场景同样要求成员身份和分配时间戳
	if req.PlayerId != nil && *req.PlayerId != "" {
		isMember, err := s.repos.Member.IsMember(raid.CommunityUuid, *req.PlayerId)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		if !isMember {
			return nil, errorx.Newf(errorx.CodeNotFound, "玩家 %s 不是社区成员", *req.PlayerId)
		}
		slot.PlayerUuid = req.PlayerId
		now := time.Now()
		slot.AssignedAt = &now
	}

	if err := s.repos.Slot.Create(&slot); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
	s.slotChangedEvent(raid, slot.Uuid, "created")

	return s.refreshedRespond(req.RaidId)
}

// UpdateSlot 部分字段更新坑位
// 指针字段 nil 表示不修改；playerId 指向空串表示取消分配。
// 分配玩家前校验其社区成员身份；分配时间戳与玩家字段同生共死
func (s *raidService) UpdateSlot(req request.UpdateSlotRequest) (*respond.RaidRespond, error) {
	raid, err := s.loadComposableRaid(req.RaidId)
	if err != nil {
		return nil, err
	}

	slot, err := s.repos.Slot.FindByUuid(req.SlotId)
	if err != nil || slot.RaidUuid != req.RaidId {
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		return nil, errorx.Newf(errorx.CodeNotFound, "坑位 %s 不存在", req.SlotId)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errorx.New(errorx.CodeInvalidParam, "坑位名不能为空")
		}
		if len(*req.Name) > constants.SLOT_NAME_MAX_LEN {
			return nil, errorx.Newf(errorx.CodeInvalidParam, "坑位名最长 %d 字符", constants.SLOT_NAME_MAX_LEN)
		}
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		if *req.Role == "" {
			updates["role"] = nil
		} else {
			updates["role"] = *req.Role
		}
	}
	if req.Comment != nil {
		if *req.Comment == "" {
			updates["comment"] = nil
		} else {
			updates["comment"] = *req.Comment
		}
	}
	if req.Weapon != nil {
		if *req.Weapon == "" {
			updates["weapon"] = nil
		} else {
			updates["weapon"] = *req.Weapon
		}
	}
	if req.BuildId != nil {
		if *req.BuildId == "" {
			updates["build_uuid"] = nil
		} else {
			updates["build_uuid"] = *req.BuildId
		}
	}
	if req.PlayerId != nil {
		if *req.PlayerId == "" {
			// 取消分配：玩家和时间戳一起清空
			updates["player_uuid"] = nil
			updates["assigned_at"] = nil
		} else {
			isMember, err := s.repos.Member.IsMember(raid.CommunityUuid, *req.PlayerId)
			if err != nil {
				zap.L().Error(err.Error())
				return nil, errorx.ErrServerBusy
			}
			if !isMember {
				return nil, errorx.Newf(errorx.CodeNotFound, "玩家 %s 不是社区成员", *req.PlayerId)
			}
			updates["player_uuid"] = *req.PlayerId
			updates["assigned_at"] = time.Now()
		}
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}

	if len(updates) > 0 {
		if err := s.repos.Slot.UpdateFields(req.SlotId, updates); err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
		s.slotChangedEvent(raid, req.SlotId, "updated")
	}

	return s.refreshedRespond(req.RaidId)
}

// DeleteSlot 删除坑位
// 同一事务内把剩余坑位的顺序压缩回 0..n-1，保持顺序值连续不重复
func (s *raidService) DeleteSlot(req request.DeleteSlotRequest) (*respond.RaidRespond, error) {
	raid, err := s.loadComposableRaid(req.RaidId)
	if err != nil {
		return nil, err
	}

	slot, err := s.repos.Slot.FindByUuid(req.SlotId)
	if err != nil || slot.RaidUuid != req.RaidId {
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		return nil, errorx.Newf(errorx.CodeNotFound, "坑位 %s 不存在", req.SlotId)
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Slot.SoftDeleteByUuid(req.SlotId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		// 顺序压缩
		remaining, err := txRepos.Slot.FindByRaidUuid(req.RaidId)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		for i := range remaining {
			if remaining[i].SortOrder != i {
				if err := txRepos.Slot.UpdateOrder(remaining[i].Uuid, i); err != nil {
					zap.L().Error(err.Error())
					return errorx.ErrServerBusy
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
	s.slotChangedEvent(raid, req.SlotId, "deleted")

	return s.refreshedRespond(req.RaidId)
}

// ReorderSlots 按给定 id 列表整体重排坑位顺序
// 提供的 id 集合必须与现有坑位集合完全一致，多出和缺少的 id
// 都会被逐个点名；恒等排列直接成功且不改动任何顺序值
func (s *raidService) ReorderSlots(req request.ReorderSlotsRequest) (*respond.RaidRespond, error) {
	raid, err := s.loadComposableRaid(req.RaidId)
	if err != nil {
		return nil, err
	}

	slots, err := s.repos.Slot.FindByRaidUuid(req.RaidId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 集合校验：supplied 与 existing 必须互为排列
	currentOrder := make(map[string]int, len(slots))
	for _, slot := range slots {
		currentOrder[slot.Uuid] = slot.SortOrder
	}
	supplied := make(map[string]bool, len(req.SlotIds))
	var extra []string
	for _, id := range req.SlotIds {
		if supplied[id] {
			return nil, errorx.Newf(errorx.CodeInvalidParam, "重排列表中 id 重复: %s", id)
		}
		supplied[id] = true
		if _, ok := currentOrder[id]; !ok {
			extra = append(extra, id)
		}
	}
	var missing []string
	for _, slot := range slots {
		if !supplied[slot.Uuid] {
			missing = append(missing, slot.Uuid)
		}
	}
	if len(extra) > 0 || len(missing) > 0 {
		sort.Strings(extra)
		sort.Strings(missing)
		return nil, errorx.Newf(errorx.CodeInvalidParam,
			"重排 id 集合与副本坑位不匹配，多出: [%s]，缺少: [%s]",
			strings.Join(extra, ", "), strings.Join(missing, ", "))
	}

	// 事务内按列表位置重写顺序值，位置未变的坑位不产生写操作
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		for pos, id := range req.SlotIds {
			if currentOrder[id] == pos {
				continue
			}
			if err := txRepos.Slot.UpdateOrder(id, pos); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flushRaidCaches(raid.Uuid, raid.CommunityUuid)
	s.slotChangedEvent(raid, "", "reordered")

	return s.refreshedRespond(req.RaidId)
}
