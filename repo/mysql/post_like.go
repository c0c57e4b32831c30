package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// PostLikeRepository 定义了帖子点赞记录的数据库持久化操作接口
type PostLikeRepository interface {
	// TogglePostLike 在事务中对 (postID, identityKey) 执行点赞开关。
	// - 已点过赞则取消（删除记录），未点过则新增记录。
	// - 点赞计数不做 ±1 增减，而是删改后在同一事务内用 COUNT 重算并
	//   回写 posts.like_count，保证计数与记录表始终一致，天然自愈。
	// - 返回操作后的点赞状态与最新计数。
	TogglePostLike(ctx context.Context, tx *gorm.DB, postID uint64, identityKey string) (liked bool, likeCount int64, err error)
}

// postLikeRepository 是 PostLikeRepository 接口的 GORM 实现
type postLikeRepository struct {
	db *gorm.DB
}

// NewPostLikeRepository 创建 PostLikeRepository 实例
func NewPostLikeRepository(db *gorm.DB) PostLikeRepository {
	return &postLikeRepository{db: db}
}

// TogglePostLike 执行点赞开关
func (r *postLikeRepository) TogglePostLike(ctx context.Context, tx *gorm.DB, postID uint64, identityKey string) (bool, int64, error) {
	// 先尝试按条件删除。点赞记录必须物理删除 (Unscoped)，
	// 否则软删除残留会撞上 (post_id, identity_key) 唯一索引，导致无法再次点赞。
	result := tx.WithContext(ctx).Unscoped().
		Where("post_id = ? AND identity_key = ?", postID, identityKey).
		Delete(&entities.PostLike{})
	if result.Error != nil {
		return false, 0, fmt.Errorf("取消点赞 (帖子ID: %d) 失败: %w", postID, result.Error)
	}

	liked := false
	if result.RowsAffected == 0 {
		// 没有可删的记录，说明当前未点赞，转为新增。
		like := &entities.PostLike{PostID: postID, IdentityKey: identityKey}
		if err := tx.WithContext(ctx).Create(like).Error; err != nil {
			// 并发下两个请求同时走到 Create 分支，后到者撞唯一索引。
			// 此时点赞事实已经成立，把竞态归一为"已点赞"即可。
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return false, 0, fmt.Errorf("新增点赞记录 (帖子ID: %d) 失败: %w", postID, err)
			}
		}
		liked = true
	}

	// 同一事务内重算计数并回写冗余字段。
	var likeCount int64
	err := tx.WithContext(ctx).Model(&entities.PostLike{}).
		Where("post_id = ?", postID).
		Count(&likeCount).Error
	if err != nil {
		return false, 0, fmt.Errorf("统计帖子 (ID: %d) 点赞数失败: %w", postID, err)
	}

	err = tx.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		UpdateColumn("like_count", likeCount).Error
	if err != nil {
		return false, 0, fmt.Errorf("回写帖子 (ID: %d) 点赞计数失败: %w", postID, err)
	}

	return liked, likeCount, nil
}
