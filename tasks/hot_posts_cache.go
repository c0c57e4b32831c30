package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// HotPostsCacheTask 负责定时刷新 Redis 中的热门帖子缓存。
// 它协调生成热榜快照，并基于该快照更新帖子基本信息 Hash 和帖子详情缓存。
type HotPostsCacheTask struct {
	taskCache redis.PostTaskCache
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewHotPostsCacheTask 初始化并启动热门帖子缓存的定时任务。
func NewHotPostsCacheTask(taskCache redis.PostTaskCache, logger *core.ZapLogger) *HotPostsCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &HotPostsCacheTask{
		taskCache: taskCache,
		cron:      cronV3,
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotPostsCacheTask) startCronJob() {
	schedule := constant.RefreshHotPostsInterval
	t.logger.Info("准备启动热门帖子相关缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门帖子相关缓存刷新任务开始执行...")
		startTime := time.Now()
		// 单次任务的超时应大于各子步骤正常执行时间的总和，并留有余量。
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.syncHotCaches(ctx)

		duration := time.Since(startTime)
		t.logger.Info("热门帖子相关缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门帖子相关缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门帖子相关缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncHotCaches 是定时任务执行的实际同步逻辑。
// 按顺序执行：
// 1. 创建/更新热榜快照 (ZSet)。
// 2. 基于快照同步热门帖子基本信息到 Hash。
// 3. 基于快照同步热门帖子详情到独立的 String Key。
func (t *HotPostsCacheTask) syncHotCaches(ctx context.Context) {
	if err := t.taskCache.CreateHotList(ctx, constant.HotPostsCacheSize); err != nil {
		// 快照生成失败时后续步骤的数据源可能是旧的，记录错误并继续，
		// 让后续步骤自行处理源数据问题。
		t.logger.Error("创建/更新热榜快照 ZSet 失败，后续缓存可能不准确", zap.Error(err))
	}

	if err := t.taskCache.CacheHotPostsToRedis(ctx); err != nil {
		t.logger.Error("同步热门帖子基本信息到 Redis Hash 失败", zap.Error(err))
	}

	if err := t.taskCache.CacheHotPostDetailsToRedis(ctx); err != nil {
		t.logger.Error("同步热门帖子详情到 Redis 失败", zap.Error(err))
	}
}

// Stop 优雅地停止 cron 调度器。
func (t *HotPostsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门帖子相关缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门帖子相关缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
