package constant

// 服务标识，用于链路追踪与日志
const (
	ServiceName    = "community_service"
	ServiceVersion = "1.0.0"
)

// MaxCommentDepth 评论最大嵌套深度。
// 顶层评论深度为 0，对顶层评论的回复深度为 1，以此类推；
// 创建回复时若 父评论深度+1 > MaxCommentDepth 则拒绝（服务端硬性校验）。
const MaxCommentDepth = 3

// 定时任务调度表达式 (robfig/cron 标准 5 段格式)
const (
	// SyncViewCountInterval 浏览量 Redis -> MySQL 回写周期
	SyncViewCountInterval = "*/5 * * * *"
	// RefreshHotPostsInterval 热帖榜单缓存刷新周期
	RefreshHotPostsInterval = "*/10 * * * *"
)

// HotPostsCacheSize 热帖榜单缓存的帖子数量上限 (全量榜单的 Top N)
const HotPostsCacheSize = 100
