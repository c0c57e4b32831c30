package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// HotPostService 处理热门帖子榜单的查询逻辑，数据全部来自 Redis 缓存。
type HotPostService struct {
	postCache redis.Cache // 帖子缓存读取接口
	logger    *core.ZapLogger
}

// NewHotPostService 是 HotPostService 的构造函数。
func NewHotPostService(postCache redis.Cache, logger *core.ZapLogger) *HotPostService {
	return &HotPostService{
		postCache: postCache,
		logger:    logger,
	}
}

// GetHotPostsByCursor 实现游标方式获取热门帖子列表。
// - lastPostID: 上一页最后一条帖子的 ID，为 nil 表示首次加载。
// - limit: 希望获取的帖子数量。
// - 返回: 帖子列表, 下一页游标, 错误。
func (s *HotPostService) GetHotPostsByCursor(ctx context.Context, lastPostID *uint64, limit int) ([]*vo.PostResponse, *uint64, error) {
	var start int64 // ZSet 范围查询的起始排名 (0-based)

	if limit <= 0 {
		s.logger.Warn("GetHotPostsByCursor: 请求的 limit 小于或等于0", zap.Int("limit", limit))
		return []*vo.PostResponse{}, nil, errors.New("limit 参数必须大于0")
	}

	if lastPostID == nil { // 首次加载
		start = 0
	} else { // 非首次加载，根据 lastPostID 计算 start
		rank, err := s.postCache.GetPostRank(ctx, *lastPostID)
		if err != nil {
			s.logger.Error("获取上一页最后帖子排名失败 (游标分页)", zap.Error(err), zap.Uint64p("lastPostID", lastPostID))
			return nil, nil, fmt.Errorf("获取帖子排名失败: %w", err)
		}
		if rank == -1 {
			// 游标帖子已不在榜单中，返回特定错误让客户端决定刷新还是从头加载。
			s.logger.Warn("游标 lastPostID 已不在热榜中 (游标分页)", zap.Uint64p("lastPostID", lastPostID))
			return nil, nil, fmt.Errorf("提供的游标帖子(ID: %d)已不在热门榜单中，请刷新", *lastPostID)
		}
		start = rank + 1 // 下一页从上一页最后一条的下一名开始
	}

	stop := start + int64(limit) - 1

	// 从热榜 ZSet 获取指定排名范围内的帖子 ID 列表。
	postIDs, err := s.postCache.GetPostsByRange(ctx, start, stop)
	if err != nil {
		s.logger.Error("从缓存按排名范围获取帖子 ID 失败 (游标分页)", zap.Error(err), zap.Int64("start", start), zap.Int64("stop", stop))
		return nil, nil, fmt.Errorf("获取帖子 ID 列表失败: %w", err)
	}

	if len(postIDs) == 0 {
		// 可能已到达列表末尾或该范围无数据。
		return []*vo.PostResponse{}, nil, nil
	}

	// 根据 postIDs 从 Redis Hash 缓存中批量获取帖子实体数据。
	posts, err := s.postCache.GetPosts(ctx, postIDs)
	if err != nil {
		s.logger.Error("从缓存批量获取帖子实体失败 (游标分页)", zap.Error(err), zap.Any("postIDs", postIDs))
		return nil, nil, fmt.Errorf("获取帖子数据失败: %w", err)
	}
	// GetPosts 可能因部分 ID 缓存未命中而返回比 postIDs 数量少的记录，
	// 游标的确定基于从 ZSet 获取的 ID 数量。

	postResponses := vo.MapPostsToPostResponsesVO(posts)

	// 确定下一页的游标：从 ZSet 获取的 ID 数量等于 limit 说明可能还有更多数据。
	var nextCursor *uint64
	if len(postIDs) == limit && len(postResponses) > 0 {
		lastReturnedID := postIDs[len(postIDs)-1]
		nextCursor = &lastReturnedID
	}

	return postResponses, nextCursor, nil
}
