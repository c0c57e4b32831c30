package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
)

// PostRepository 定义了帖子实体的数据库持久化操作接口
type PostRepository interface {
	// CreatePost 在事务中创建帖子记录。
	// - 传入 tx 是为了让调用方（服务层）能把建帖和发事件前的其他写操作放进同一个事务。
	CreatePost(ctx context.Context, tx *gorm.DB, post *entities.Post) error

	// GetPostByID 根据主键获取帖子。
	// - 未找到时返回 commonerrors.ErrRepoNotFound，由上层决定如何响应。
	GetPostByID(ctx context.Context, postID uint64) (*entities.Post, error)

	// ListVisiblePosts 分页查询公开可见的帖子列表。
	// - 过滤掉隐藏帖与审核拒绝帖；置顶帖排在最前，其余按创建时间倒序。
	// - 支持标题/正文模糊搜索与分类筛选。
	ListVisiblePosts(ctx context.Context, query *dto.ListPostsRequest) ([]*entities.Post, int64, error)

	// IncrementCommentCount 在事务中按增量调整帖子的评论计数。
	// - delta 可以为负（删除评论及其子树时）。
	IncrementCommentCount(ctx context.Context, tx *gorm.DB, postID uint64, delta int64) error

	// MarkReported 将帖子标记为被举报，等待管理员处理。
	// - 重复举报是幂等的。
	MarkReported(ctx context.Context, postID uint64) error

	// DeletePost 软删除帖子（gorm.DeletedAt）。
	DeletePost(ctx context.Context, tx *gorm.DB, postID uint64) error
}

// postRepository 是 PostRepository 接口的 GORM 实现
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建 PostRepository 实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// CreatePost 创建帖子
func (r *postRepository) CreatePost(ctx context.Context, tx *gorm.DB, post *entities.Post) error {
	if err := tx.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("创建帖子失败: %w", err)
	}
	return nil
}

// GetPostByID 根据 ID 获取帖子
func (r *postRepository) GetPostByID(ctx context.Context, postID uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询帖子 (ID: %d) 失败: %w", postID, err)
	}
	return &post, nil
}

// ListVisiblePosts 分页查询公开可见的帖子
func (r *postRepository) ListVisiblePosts(ctx context.Context, query *dto.ListPostsRequest) ([]*entities.Post, int64, error) {
	db := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("is_hidden = ?", false).
		Where("status <> ?", sharedEnums.Rejected)

	if query.Search != nil && *query.Search != "" {
		pattern := "%" + *query.Search + "%"
		db = db.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if query.Category != nil {
		db = db.Where("category = ?", *query.Category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计可见帖子总数失败: %w", err)
	}

	var posts []*entities.Post
	err := db.Order("is_pinned DESC, created_at DESC").
		Offset(query.GetOffset()).
		Limit(query.GetLimit()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询可见帖子列表失败: %w", err)
	}
	return posts, total, nil
}

// IncrementCommentCount 按增量调整评论计数
func (r *postRepository) IncrementCommentCount(ctx context.Context, tx *gorm.DB, postID uint64, delta int64) error {
	result := tx.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("更新帖子 (ID: %d) 评论计数失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// MarkReported 标记帖子被举报
func (r *postRepository) MarkReported(ctx context.Context, postID uint64) error {
	result := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		Update("is_reported", true)
	if result.Error != nil {
		return fmt.Errorf("标记帖子 (ID: %d) 被举报失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		// 区分"帖子不存在"和"已经是举报状态"：后者 Update 相同值时 MySQL 也可能返回 0，
		// 这里回查一次确认帖子存在即可。
		var count int64
		if err := r.db.WithContext(ctx).Model(&entities.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("确认帖子 (ID: %d) 是否存在失败: %w", postID, err)
		}
		if count == 0 {
			return commonerrors.ErrRepoNotFound
		}
	}
	return nil
}

// DeletePost 软删除帖子
func (r *postRepository) DeletePost(ctx context.Context, tx *gorm.DB, postID uint64) error {
	result := tx.WithContext(ctx).Delete(&entities.Post{}, postID)
	if result.Error != nil {
		return fmt.Errorf("删除帖子 (ID: %d) 失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
