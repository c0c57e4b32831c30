package entities

import (
	sharedEntities "github.com/Xushengqwer/go-common/models/entities"
)

// PostLike 帖子点赞记录实体
//   - 使用场景: 记录"某个网络身份给某个帖子点过赞"这一事实，行的存在与否
//     就是点赞状态本身，Post.LikeCount 只是它的冗余汇总
//   - 表名: post_likes
//   - 并发: (post_id, identity_key) 上的复合唯一索引是防止并发重复点赞的
//     最终防线，仓库层捕获 gorm.ErrDuplicatedKey 将竞态归一为一次点赞
type PostLike struct {
	sharedEntities.BaseModel // 嵌入自定义的 BaseModel, 包含 ID, CreatedAt, UpdatedAt, DeletedAt 字段

	// 帖子ID (外键，指向 posts 表的主键)
	PostID uint64 `gorm:"type:bigint;not null;uniqueIndex:idx_post_identity"`

	// 请求方身份键，取转发头中的第一跳地址，否则取直连地址
	// - 注意: 这只是尽力而为的身份近似（NAT/代理下多个真实用户会共享
	//   同一地址），不是安全边界，已作为已知限制记录
	IdentityKey string `gorm:"type:varchar(64);not null;uniqueIndex:idx_post_identity"`
}
