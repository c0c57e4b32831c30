package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// PostViewBloomPrefix 是帖子浏览记录 Bloom Filter 的 Key 前缀。
	// 每个帖子会有一个对应的 Bloom Filter Key，
	// 用于快速判断某个访客是否在一定时间内浏览过该帖子，以实现防刷。
	// 示例 Key: "community_view_bloom:123" (其中 123 是 postID)
	// Redis 类型: String (由 RedisBloom 模块管理)
	PostViewBloomPrefix = "community_view_bloom:"

	// PostViewCountPrefix 是帖子浏览量计数器的 Key 前缀。
	// 每个帖子会有一个对应的 String 类型的 Key，用于原子性计数。
	// 示例 Key: "community_view_count:123"
	// Redis 类型: String
	PostViewCountPrefix = "community_view_count:"

	// PostsHashKey 是帖子实体缓存 Hash 的 Key 名称。
	// Field 为帖子 ID，Value 为 JSON 序列化后的帖子实体快照。
	// Redis 类型: Hash
	PostsHashKey = "community_posts"

	// PostDetailCacheKeyPrefix 是热门帖子详情缓存的 Key 前缀。
	// Value 为 JSON 序列化后的帖子详情 VO。
	// 示例 Key: "community_post_detail:123"
	// Redis 类型: String
	PostDetailCacheKeyPrefix = "community_post_detail:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// PostsRankKey 是全量帖子排行榜的 Key 名称。
	// Sorted Set，成员是帖子 ID，分数是浏览量。
	// Redis 类型: Sorted Set
	PostsRankKey = "community_post_rank"

	// HotPostsRankKey 是热门帖子榜单的 Key 名称。
	// 由定时任务从 PostsRankKey 中截取 Top N 生成。
	// Redis 类型: Sorted Set
	HotPostsRankKey = "community_hot_post_rank"
)
