package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

// Cache 定义了帖子相关的缓存读取接口。
// - 目标: 提供 Redis 缓存层，加速热点数据的访问，减轻数据库压力。
// - 包括: 热榜帖子列表缓存、帖子详情缓存、排名查询等。
type Cache interface {
	// GetPostRank 获取指定帖子在热榜 ZSet (`HotPostsRankKey`) 中的排名（0-based, 降序）。
	// - 返回 -1 表示帖子不在榜单中。
	GetPostRank(ctx context.Context, postID uint64) (int64, error)

	// GetPostsByRange 从热榜 ZSet (`HotPostsRankKey`) 获取指定排名范围内的帖子 ID 列表。
	// - 用于游标加载热门帖子列表。
	// - start, stop 是基于 0 的排名索引。
	GetPostsByRange(ctx context.Context, start, stop int64) ([]uint64, error)

	// GetPosts 从 Redis Hash (`PostsHashKey`) 中批量获取帖子实体。
	// - 根据帖子 ID 列表，高效获取缓存的帖子信息，用于热榜信息流场景。
	// - 返回的帖子实体中 ViewCount 反映的是缓存刷新时的快照值。
	GetPosts(ctx context.Context, postIDs []uint64) ([]*entities.Post, error)

	// GetPostDetail 从 Redis (`PostDetailCacheKeyPrefix:{id}` key) 获取单个帖子详情。
	// - 用于访问热点帖子的详情页。
	// - 如果缓存未命中，返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetPostDetail(ctx context.Context, postID uint64) (*vo.PostDetailVO, error)
}

// cacheImpl 是 Cache 接口的 Redis 实现。
type cacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewCache 是 cacheImpl 的构造函数。
func NewCache(redisClient *redis.Client, logger *core.ZapLogger) Cache {
	return &cacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetPostRank 实现获取帖子排名。
// 排名是 0-based，分数越高，排名越靠前 (即 ZREVRANK 的结果)。
func (c *cacheImpl) GetPostRank(ctx context.Context, postID uint64) (int64, error) {
	key := constant.HotPostsRankKey
	member := fmt.Sprintf("%d", postID)

	rank, err := c.redisClient.ZRevRank(ctx, key, member).Result()
	if err != nil {
		// redis.Nil 表示成员不存在于 ZSet 中，按接口约定返回 -1。
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		c.logger.Error("从 Redis 获取帖子排名失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
			zap.String("key", key),
		)
		return -1, fmt.Errorf("获取帖子(ID: %d)在热榜(key: %s)中的排名失败: %w", postID, key, err)
	}

	return rank, nil
}

// GetPostsByRange 实现按排名范围获取帖子 ID。
// start 和 stop 是 0-based 的排名索引，按分数从高到低排列。
func (c *cacheImpl) GetPostsByRange(ctx context.Context, start, stop int64) ([]uint64, error) {
	key := constant.HotPostsRankKey

	// 客户端侧的基本范围校验，避免无效查询。
	if start < 0 {
		c.logger.Warn("GetPostsByRange: start 参数为负数，视为无效请求，返回空列表。",
			zap.Int64("start", start),
			zap.Int64("stop", stop),
		)
		return []uint64{}, nil
	}
	if start > stop && stop != -1 { // stop 为 -1 表示到 ZSet 末尾
		return []uint64{}, nil
	}

	idStrs, err := c.redisClient.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []uint64{}, nil
		}
		c.logger.Error("从 Redis ZRevRange 按排名范围获取帖子 ID 失败",
			zap.Error(err),
			zap.Int64("start", start),
			zap.Int64("stop", stop),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("获取排名 %d-%d 的帖子 ID 失败 (key: %s): %w", start, stop, key, err)
	}

	ids := make([]uint64, 0, len(idStrs))
	for _, idStr := range idStrs {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			// ZSet 数据被污染时跳过该成员，保证其他有效 ID 仍能被处理。
			c.logger.Warn("解析 ZSet 中的帖子 ID 字符串失败，已跳过该 ID。",
				zap.Error(parseErr),
				zap.String("idStr", idStr),
				zap.String("rankKey", key),
			)
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetPosts 从 Redis Hash (`PostsHashKey`) 中批量获取帖子实体。
func (c *cacheImpl) GetPosts(ctx context.Context, postIDs []uint64) ([]*entities.Post, error) {
	if len(postIDs) == 0 {
		return []*entities.Post{}, nil
	}

	hashKey := constant.PostsHashKey
	fields := make([]string, len(postIDs))
	for i, id := range postIDs {
		fields[i] = fmt.Sprintf("%d", id)
	}

	// HMGET 返回的 []interface{} 与请求的 fields 顺序一致，未命中的位置为 nil。
	values, err := c.redisClient.HMGet(ctx, hashKey, fields...).Result()
	if err != nil {
		c.logger.Error("从 Redis Hash 批量获取帖子失败 (HMGET 执行错误)",
			zap.Error(err),
			zap.String("hashKey", hashKey),
			zap.Int("idCount", len(postIDs)),
		)
		return nil, fmt.Errorf("批量获取帖子缓存 (key: %s) 失败: %w", hashKey, err)
	}

	posts := make([]*entities.Post, 0, len(postIDs))
	cacheMissCount := 0
	unmarshalErrorCount := 0

	for i, val := range values {
		if val == nil {
			cacheMissCount++
			continue
		}

		jsonStr, ok := val.(string)
		if !ok {
			unmarshalErrorCount++
			c.logger.Error("帖子 Hash 缓存中的值类型不是预期的字符串，跳过该帖子",
				zap.Uint64("postID", postIDs[i]),
				zap.String("hashKey", hashKey),
			)
			continue
		}

		var post entities.Post
		if jsonErr := json.Unmarshal([]byte(jsonStr), &post); jsonErr != nil {
			unmarshalErrorCount++
			c.logger.Error("反序列化帖子 Hash 缓存数据失败，跳过该帖子",
				zap.Error(jsonErr),
				zap.Uint64("postID", postIDs[i]),
				zap.String("hashKey", hashKey),
			)
			continue
		}

		posts = append(posts, &post)
	}

	c.logger.Debug("批量获取帖子 Hash 缓存完成",
		zap.String("hashKey", hashKey),
		zap.Int("requested_id_count", len(postIDs)),
		zap.Int("found_in_cache_count", len(posts)),
		zap.Int("cache_miss_count", cacheMissCount),
		zap.Int("unmarshal_error_count", unmarshalErrorCount),
	)
	return posts, nil
}

// GetPostDetail 从 Redis 获取单个帖子详情 (vo.PostDetailVO)。
// - 如果缓存未命中，返回 myErrors.ErrCacheMiss，上层服务应处理回源。
func (c *cacheImpl) GetPostDetail(ctx context.Context, postID uint64) (*vo.PostDetailVO, error) {
	key := fmt.Sprintf("%s%d", constant.PostDetailCacheKeyPrefix, postID)

	jsonData, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从 Redis 获取帖子详情 VO 失败 (GET 命令执行错误)",
			zap.Error(err),
			zap.String("key", key),
			zap.Uint64("postID", postID),
		)
		return nil, fmt.Errorf("获取帖子(ID: %d)详情缓存 (key: %s) 失败: %w", postID, key, err)
	}

	var postDetailVO vo.PostDetailVO
	if jsonErr := json.Unmarshal([]byte(jsonData), &postDetailVO); jsonErr != nil {
		c.logger.Error("反序列化帖子详情 VO 缓存数据失败",
			zap.Error(jsonErr),
			zap.String("key", key),
			zap.Uint64("postID", postID),
		)
		return nil, fmt.Errorf("解析帖子(ID: %d)详情缓存 (key: %s) 数据失败: %w", postID, key, jsonErr)
	}

	return &postDetailVO, nil
}
