package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// PostTaskCache 定义了后台任务管理和维护帖子相关缓存的操作接口。
type PostTaskCache interface {
	// CreateHotList 原子性地从总排行榜 (`PostsRankKey`) 截取前 N 条记录，生成/覆盖热榜 (`HotPostsRankKey`)。
	// 此方法负责生成后续缓存方法所依赖的热榜快照。
	CreateHotList(ctx context.Context, n int) error

	// CacheHotPostsToRedis 将 MySQL 中的热门帖子基础信息加载到 Redis Hash。
	CacheHotPostsToRedis(ctx context.Context) error

	// CacheHotPostDetailsToRedis 将 MySQL 中的热门帖子详情加载到 Redis。
	CacheHotPostDetailsToRedis(ctx context.Context) error
}

// postTaskCacheImpl 是 PostTaskCache 接口的 Redis 实现。
type postTaskCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	postBatch   mysql.PostBatchOperationsRepository
}

// NewPostTaskCacheImpl 创建 PostTaskCache 的新实例。
func NewPostTaskCacheImpl(
	redisClient *redis.Client,
	logger *core.ZapLogger,
	postBatch mysql.PostBatchOperationsRepository,
) PostTaskCache {
	return &postTaskCacheImpl{
		redisClient: redisClient,
		logger:      logger,
		postBatch:   postBatch,
	}
}

// CreateHotList 原子性地从总排行榜截取前 N 条记录，生成或覆盖热榜。
func (c *postTaskCacheImpl) CreateHotList(ctx context.Context, n int) error {
	if n <= 0 {
		c.logger.Info("CreateHotList: 请求创建的热榜大小 n 小于或等于 0，操作取消。", zap.Int("n", n))
		return nil
	}

	fullRankKey := constant.PostsRankKey
	hotListKey := constant.HotPostsRankKey

	// ZREVRANGE WITHSCORES 返回 {member1, score1, ...}，而 ZADD 需要
	// {score1, member1, ...}，所以在 Lua 中重排参数后再写入目标 ZSet。
	luaScript := redis.NewScript(`
		local items_with_scores = redis.call("ZREVRANGE", KEYS[1], 0, tonumber(ARGV[1]) - 1, "WITHSCORES")
		redis.call("DEL", KEYS[2])

		if #items_with_scores > 0 then
			local args_for_zadd = { KEYS[2] }
			for i = 1, #items_with_scores, 2 do
				table.insert(args_for_zadd, items_with_scores[i+1])
				table.insert(args_for_zadd, items_with_scores[i])
			end
			redis.call("ZADD", unpack(args_for_zadd))
		end
		return #items_with_scores / 2
	`)

	_, err := luaScript.Run(ctx, c.redisClient, []string{fullRankKey, hotListKey}, n).Result()
	if err != nil {
		c.logger.Error("执行 Lua 脚本创建热榜快照失败",
			zap.Error(err),
			zap.String("sourceKey", fullRankKey),
			zap.String("destinationKey", hotListKey),
			zap.Int("n", n),
		)
		return fmt.Errorf("创建热榜快照 (Top %d) 失败: %w", n, err)
	}

	c.logger.Info("成功创建/更新热榜快照",
		zap.String("key", hotListKey),
		zap.Int("requested_size_n", n),
	)
	return nil
}

// CacheHotPostsToRedis 将热门帖子基础信息缓存到 Redis Hash。
// 采用临时 Key + RENAME 策略，保证读取侧永远看到完整的一批数据。
func (c *postTaskCacheImpl) CacheHotPostsToRedis(ctx context.Context) error {
	startTime := time.Now()
	c.logger.Info("开始同步热门帖子到 Redis Hash (采用临时Key+RENAME策略)")

	hotListKey := constant.HotPostsRankKey
	finalHashKey := constant.PostsHashKey
	tempHashKey := finalHashKey + "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)

	postScores, err := c.redisClient.ZRevRangeWithScores(ctx, hotListKey, 0, int64(constant.HotPostsCacheSize-1)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Info("热榜 ZSet (快照) 为空，将清空帖子 Hash 缓存", zap.String("hashKeyToClear", finalHashKey))
			if delErr := c.redisClient.Del(ctx, finalHashKey).Err(); delErr != nil {
				c.logger.Error("清空帖子 Hash 缓存失败", zap.Error(delErr), zap.String("key", finalHashKey))
			}
			return nil
		}
		c.logger.Error("从热榜 ZSet (快照) 获取帖子分数失败", zap.Error(err), zap.String("key", hotListKey))
		return fmt.Errorf("获取热榜 ZSet (快照) 失败: %w", err)
	}

	currentHotPostIDs := make([]uint64, 0, len(postScores))
	currentScoreMap := make(map[string]float64) // postID string -> 快照浏览量
	for _, z := range postScores {
		idStr, ok := z.Member.(string)
		if !ok {
			errMsg := fmt.Sprintf("热榜 ZSet (key: %s) 成员类型非字符串 (member: %v)，数据异常", hotListKey, z.Member)
			c.logger.Error(errMsg)
			return errors.New(errMsg)
		}
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			errMsg := fmt.Sprintf("解析热榜 ZSet (key: %s) 成员 ID '%s' 失败: %v，数据异常", hotListKey, idStr, parseErr)
			c.logger.Error(errMsg)
			return errors.New(errMsg)
		}
		currentHotPostIDs = append(currentHotPostIDs, id)
		currentScoreMap[idStr] = z.Score
	}

	if len(currentHotPostIDs) == 0 {
		c.logger.Info("热榜 ZSet (快照) 中没有有效帖子 ID，将清空帖子 Hash 缓存", zap.String("hashKeyToClear", finalHashKey))
		if delErr := c.redisClient.Del(ctx, finalHashKey).Err(); delErr != nil {
			c.logger.Error("清空帖子 Hash 缓存失败", zap.Error(delErr), zap.String("key", finalHashKey))
		}
		return nil
	}

	postsFromDB, dbErr := c.postBatch.GetPostsByIDs(ctx, currentHotPostIDs)
	if dbErr != nil {
		c.logger.Error("从 MySQL 批量获取热门帖子失败，本次缓存更新中止，现有缓存将保留。",
			zap.Error(dbErr), zap.Int("idCount", len(currentHotPostIDs)))
		return fmt.Errorf("从数据库获取帖子数据失败: %w", dbErr)
	}

	dataToCache := make(map[string]interface{})
	marshalErrors := 0
	dbPostsMap := make(map[uint64]*entities.Post)
	for _, p := range postsFromDB {
		dbPostsMap[p.ID] = p
	}

	for _, hotID := range currentHotPostIDs {
		idStr := fmt.Sprintf("%d", hotID)
		post, foundInDB := dbPostsMap[hotID]
		if !foundInDB {
			// 帖子可能刚被删除或隐藏，榜单快照里的残留条目直接跳过。
			c.logger.Warn("热榜中的 PostID 在数据库中未找到，无法缓存该帖子", zap.Uint64("postID", hotID))
			continue
		}
		postToCache := *post
		if score, scoreExists := currentScoreMap[idStr]; scoreExists {
			postToCache.ViewCount = int64(score) // 使用 ZSet 快照中的分数作为浏览量
		}
		jsonData, jsonErr := json.Marshal(postToCache)
		if jsonErr != nil {
			c.logger.Error("序列化帖子实体失败，跳过该帖子", zap.Error(jsonErr), zap.Uint64("postID", postToCache.ID))
			marshalErrors++
			continue
		}
		dataToCache[idStr] = jsonData
	}

	if len(dataToCache) == 0 {
		c.logger.Error("未能准备任何有效的帖子数据进行缓存 (DB未找到或序列化失败)，现有缓存将保留。",
			zap.Int("hotIDsFromZset", len(currentHotPostIDs)),
			zap.Int("dbPostsFetched", len(postsFromDB)),
			zap.Int("marshalErrors", marshalErrors),
		)
		return errors.New("未能准备有效的帖子数据进行缓存，操作中止")
	}

	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempHashKey)
	if hmSetCmdErr := pipe.HMSet(ctx, tempHashKey, dataToCache).Err(); hmSetCmdErr != nil {
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("构造 HMSet 命令 (key: %s) 失败: %w", tempHashKey, hmSetCmdErr)
	}
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		c.logger.Error("执行 Redis Pipeline (写入临时 Hash) 失败，现有缓存将保留。",
			zap.Error(execErr), zap.String("tempHashKey", tempHashKey))
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("写入临时帖子 Hash 缓存 (key: %s) 失败: %w", tempHashKey, execErr)
	}

	if renameErr := c.redisClient.Rename(ctx, tempHashKey, finalHashKey).Err(); renameErr != nil {
		c.logger.Error("执行 Redis RENAME (temp 到 final Hash) 失败，新缓存可能在临时Key中，现有缓存可能仍存在。",
			zap.Error(renameErr),
			zap.String("tempHashKey", tempHashKey),
			zap.String("finalHashKey", finalHashKey),
		)
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("重命名临时 Hash (key: %s) 到最终 Hash (key: %s) 失败: %w", tempHashKey, finalHashKey, renameErr)
	}

	c.logger.Info("成功将热门帖子同步到 Redis Hash",
		zap.String("finalHashKey", finalHashKey),
		zap.Int("cachedCount", len(dataToCache)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// CacheHotPostDetailsToRedis 实现缓存热门帖子详情的逻辑。
// 依赖调用方已通过 CreateHotList 更新了热榜快照；采用临时Key+RENAME及差量删除策略。
func (c *postTaskCacheImpl) CacheHotPostDetailsToRedis(ctx context.Context) error {
	startTime := time.Now()
	c.logger.Info("开始同步热门帖子详情到 Redis (基于已生成的热榜快照)")

	// 1. 从热榜 ZSet 获取当前热门帖子ID和分数(浏览量)
	hotListKey := constant.HotPostsRankKey
	postScores, err := c.redisClient.ZRevRangeWithScores(ctx, hotListKey, 0, int64(constant.HotPostsCacheSize-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Error("从热榜 ZSet (快照) 获取热门帖子列表（带分数）失败", zap.Error(err), zap.String("key", hotListKey))
		return fmt.Errorf("从热榜 ZSet (快照) 获取热门帖子列表（带分数）失败: %w", err)
	}

	currentHotPostIDs := make([]uint64, 0, len(postScores))
	currentHotPostScoresMap := make(map[uint64]float64, len(postScores))
	for _, z := range postScores {
		idStr, ok := z.Member.(string)
		if !ok {
			errMsg := fmt.Sprintf("热榜 ZSet (快照 key: %s) 成员类型非字符串 (member: %v)，数据异常", hotListKey, z.Member)
			c.logger.Error(errMsg)
			return errors.New(errMsg)
		}
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			errMsg := fmt.Sprintf("解析热榜 ZSet (快照 key: %s) 成员 ID '%s' 失败: %v，数据异常", hotListKey, idStr, parseErr)
			c.logger.Error(errMsg)
			return errors.New(errMsg)
		}
		currentHotPostIDs = append(currentHotPostIDs, id)
		currentHotPostScoresMap[id] = z.Score
	}

	// 2. 扫描当前已缓存的帖子详情 Key，用于差量删除
	cachedDetailIDsMap, scanErr := c.scanCachedDetailKeys(ctx)
	if scanErr != nil {
		return scanErr
	}

	// 热榜为空时清理全部旧详情缓存后返回。
	if len(currentHotPostIDs) == 0 {
		if len(cachedDetailIDsMap) > 0 {
			keysToDelete := make([]string, 0, len(cachedDetailIDsMap))
			for _, key := range cachedDetailIDsMap {
				keysToDelete = append(keysToDelete, key)
			}
			if delErr := c.redisClient.Del(ctx, keysToDelete...).Err(); delErr != nil {
				c.logger.Error("在热榜为空时清理所有帖子详情缓存失败", zap.Error(delErr), zap.Int("keysToDelete", len(keysToDelete)))
			} else {
				c.logger.Info("热榜为空，已清理所有旧的帖子详情缓存", zap.Int("deletedCount", len(keysToDelete)))
			}
		}
		return nil
	}

	currentHotPostIDsSet := make(map[uint64]bool, len(currentHotPostIDs))
	for _, id := range currentHotPostIDs {
		currentHotPostIDsSet[id] = true
	}
	var finalKeysToDelete []string
	for cachedID, finalKey := range cachedDetailIDsMap {
		if !currentHotPostIDsSet[cachedID] {
			finalKeysToDelete = append(finalKeysToDelete, finalKey)
		}
	}

	// 3. 从 MySQL 批量加载热门帖子并写入临时 Key
	postsData, dbErr := c.postBatch.GetPostsByIDs(ctx, currentHotPostIDs)
	if dbErr != nil {
		c.logger.Error("从MySQL批量获取帖子失败，操作中止，不修改现有缓存。", zap.Error(dbErr))
		return fmt.Errorf("数据库获取帖子失败: %w", dbErr)
	}

	tempKeyToFinalKeyMap := make(map[string]string)
	marshalErrorCount := 0
	pipe := c.redisClient.Pipeline()
	for _, post := range postsData {
		viewCountFromSnapshot := post.ViewCount
		if score, ok := currentHotPostScoresMap[post.ID]; ok {
			viewCountFromSnapshot = int64(score)
		}

		postDetailVO := vo.PostDetailVO{
			ID:           post.ID,
			CreatedAt:    post.CreatedAt,
			UpdatedAt:    post.UpdatedAt,
			Title:        post.Title,
			Content:      post.Content,
			Category:     post.Category,
			Nickname:     post.Nickname,
			LikeCount:    post.LikeCount,
			ViewCount:    viewCountFromSnapshot, // 使用来自热榜快照的浏览量
			CommentCount: post.CommentCount,
			IsPinned:     post.IsPinned,
		}

		idStr := strconv.FormatUint(post.ID, 10)
		jsonData, jsonErr := json.Marshal(postDetailVO)
		if jsonErr != nil {
			c.logger.Error("序列化帖子详情VO失败，跳过", zap.Error(jsonErr), zap.Uint64("postID", post.ID))
			marshalErrorCount++
			continue
		}
		tempKey := constant.PostDetailCacheKeyPrefix + "temp:" + idStr
		finalKey := constant.PostDetailCacheKeyPrefix + idStr

		pipe.Set(ctx, tempKey, jsonData, 0)
		tempKeyToFinalKeyMap[tempKey] = finalKey
	}

	if len(tempKeyToFinalKeyMap) > 0 {
		if _, execErr := pipe.Exec(ctx); execErr != nil {
			c.logger.Error("Pipeline执行失败：写入帖子详情到临时Key时出错，操作中止，不修改现有缓存。",
				zap.Error(execErr), zap.Int("attemptedTempKeyWrites", len(tempKeyToFinalKeyMap)))
			keysToClean := make([]string, 0, len(tempKeyToFinalKeyMap))
			for tKey := range tempKeyToFinalKeyMap {
				keysToClean = append(keysToClean, tKey)
			}
			c.redisClient.Del(ctx, keysToClean...)
			return fmt.Errorf("写入新详情到临时缓存失败: %w", execErr)
		}
	}

	// 4. 删除不再热门的帖子详情缓存
	if len(finalKeysToDelete) > 0 {
		delPipe := c.redisClient.Pipeline()
		for _, keyToDel := range finalKeysToDelete {
			delPipe.Del(ctx, keyToDel)
		}
		if _, execErr := delPipe.Exec(ctx); execErr != nil {
			c.logger.Warn("Pipeline执行失败：删除不再热门的帖子详情时出错，部分旧缓存可能残留。",
				zap.Error(execErr), zap.Int("deleteKeyCount", len(finalKeysToDelete)))
		}
	}

	// 5. 激活新缓存 (RENAME temp keys to final keys)
	if len(tempKeyToFinalKeyMap) > 0 {
		renamePipe := c.redisClient.Pipeline()
		for tempKey, finalKey := range tempKeyToFinalKeyMap {
			renamePipe.Rename(ctx, tempKey, finalKey)
		}
		if _, execErr := renamePipe.Exec(ctx); execErr != nil {
			c.logger.Error("Pipeline执行严重失败：RENAME临时Key到最终Key时出错。缓存状态可能不一致，部分新数据可能仍在临时区。",
				zap.Error(execErr), zap.Int("renameCount", len(tempKeyToFinalKeyMap)))
			return fmt.Errorf("RENAME临时缓存失败: %w", execErr)
		}
	}

	c.logger.Info("完成同步热门帖子详情到 Redis 任务",
		zap.Int("cachedCount", len(tempKeyToFinalKeyMap)),
		zap.Int("deletedCount", len(finalKeysToDelete)),
		zap.Int("marshalErrors", marshalErrorCount),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// scanCachedDetailKeys 扫描现存的帖子详情缓存 Key，返回 postID -> 完整 Key 的映射。
// 临时区的 Key (带 "temp:" 段) 不计入。
func (c *postTaskCacheImpl) scanCachedDetailKeys(ctx context.Context) (map[uint64]string, error) {
	var cachedDetailKeys []string
	var cursor uint64
	scanPattern := constant.PostDetailCacheKeyPrefix + "*"
	scanCount := int64(1000)
	for {
		keys, nextCursor, scanErr := c.redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if scanErr != nil {
			c.logger.Error("扫描已缓存的帖子详情Key失败，无法进行差量更新，中止任务。",
				zap.Error(scanErr), zap.String("pattern", scanPattern), zap.Uint64("cursor", cursor))
			return nil, fmt.Errorf("扫描已缓存详情Key (pattern: %s) 失败: %w", scanPattern, scanErr)
		}
		cachedDetailKeys = append(cachedDetailKeys, keys...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	cachedDetailIDsMap := make(map[uint64]string, len(cachedDetailKeys))
	for _, key := range cachedDetailKeys {
		suffix := strings.TrimPrefix(key, constant.PostDetailCacheKeyPrefix)
		if strings.Contains(suffix, "temp:") {
			continue
		}
		id, parseErr := strconv.ParseUint(suffix, 10, 64)
		if parseErr != nil {
			c.logger.Warn("解析已缓存的帖子详情Key中的ID失败，跳过", zap.String("key", key), zap.Error(parseErr))
			continue
		}
		cachedDetailIDsMap[id] = key
	}
	return cachedDetailIDsMap, nil
}
