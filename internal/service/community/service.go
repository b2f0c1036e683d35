// Package community 实现社区业务逻辑
// 维护副本引擎消费的社区存在性和成员身份数据
package community

import (
	"context"

	"go.uber.org/zap"

	"albion_raid_server/internal/dao/mysql/repository"
	myredis "albion_raid_server/internal/dao/redis"
	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/dto/respond"
	"albion_raid_server/internal/model"
	"albion_raid_server/pkg/constants"
	"albion_raid_server/pkg/errorx"
	"albion_raid_server/pkg/util/random"
)

// communityService 社区业务逻辑实现
type communityService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewCommunityService 构造函数，注入依赖
func NewCommunityService(repos *repository.Repositories, cacheService myredis.AsyncCacheService) *communityService {
	return &communityService{
		repos: repos,
		cache: cacheService,
	}
}

func communityInfoKey(communityUuid string) string {
	return "community_info_" + communityUuid
}

func buildCommunityRespond(c *model.Community) *respond.CommunityRespond {
	return &respond.CommunityRespond{
		CommunityId: c.Uuid,
		Name:        c.Name,
		OwnerId:     c.OwnerUuid,
		MemberCnt:   c.MemberCnt,
	}
}

// CreateCommunity 创建社区
// 同一事务内写入社区和创建者的成员记录
func (s *communityService) CreateCommunity(req request.CreateCommunityRequest) (*respond.CommunityRespond, error) {
	community := model.Community{
		Uuid:      "C" + random.GetNowAndLenRandomString(11),
		Name:      req.Name,
		OwnerUuid: req.OwnerId,
		MemberCnt: 1,
	}
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Community.Create(&community); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		member := model.CommunityMember{
			CommunityUuid: community.Uuid,
			PlayerUuid:    req.OwnerId,
			Role:          3,
		}
		if err := txRepos.Member.Create(&member); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buildCommunityRespond(&community), nil
}

// GetCommunityInfo 查询社区信息（cache-aside）
func (s *communityService) GetCommunityInfo(communityId string) (*respond.CommunityRespond, error) {
	key := communityInfoKey(communityId)
	return myredis.WithCache(context.Background(), s.cache, key, constants.RAID_CACHE_TTL, func() (*respond.CommunityRespond, error) {
		community, err := s.repos.Community.FindByUuid(communityId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.Newf(errorx.CodeNotFound, "社区 %s 不存在", communityId)
			}
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		return buildCommunityRespond(community), nil
	})
}

// JoinCommunity 玩家加入社区
// 重复加入直接成功，不产生第二条成员记录
func (s *communityService) JoinCommunity(req request.JoinCommunityRequest) error {
	exists, err := s.repos.Community.ExistsByUuid(req.CommunityId)
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !exists {
		return errorx.Newf(errorx.CodeNotFound, "社区 %s 不存在", req.CommunityId)
	}

	isMember, err := s.repos.Member.IsMember(req.CommunityId, req.PlayerId)
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if isMember {
		return nil
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		member := model.CommunityMember{
			CommunityUuid: req.CommunityId,
			PlayerUuid:    req.PlayerId,
			Role:          1,
		}
		if err := txRepos.Member.Create(&member); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Community.IncrementMemberCount(req.CommunityId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.SubmitTask(func() {
			if err := s.cache.Delete(context.Background(), communityInfoKey(req.CommunityId)); err != nil {
				zap.L().Error(err.Error())
			}
		})
	}
	return nil
}
