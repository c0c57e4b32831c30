package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/myErrors"
)

// CommentRepository 定义了评论实体的数据库持久化操作接口
type CommentRepository interface {
	// CreateComment 在事务中创建评论记录。
	CreateComment(ctx context.Context, tx *gorm.DB, comment *entities.Comment) error

	// GetCommentByID 根据主键获取评论（包含口令字段，仅供服务层校验使用）。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, commentID uint64) (*entities.Comment, error)

	// ListCommentsByPostID 获取指定帖子下的全部评论，按创建顺序（主键升序）排列。
	// - 返回扁平列表，树结构由读取侧重建。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// ListReplies 获取指定评论的直接子回复，按创建顺序排列。
	ListReplies(ctx context.Context, parentID uint64) ([]*entities.Comment, error)

	// UpdateComment 更新评论的昵称与内容。
	// - 口令不可变更；UpdatedAt 由 GORM 自动刷新。
	UpdateComment(ctx context.Context, commentID uint64, nickname, content string) error

	// ResolveDepth 计算评论在嵌套树中的深度（顶层评论深度为 0）。
	// - 沿 ParentID 链向上回溯；回溯步数超过 maxDepth 时返回
	//   myErrors.ErrDepthExceeded，同时防御数据库中可能存在的环。
	ResolveDepth(ctx context.Context, tx *gorm.DB, commentID uint64, maxDepth int) (int, error)

	// DeleteCommentTree 在事务中删除评论及其整棵子树，返回删除的总条数。
	// - 级联删除：子回复随父评论一并清理，不留孤儿节点。
	DeleteCommentTree(ctx context.Context, tx *gorm.DB, commentID uint64) (int64, error)
}

// commentRepository 是 CommentRepository 接口的 GORM 实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 CommentRepository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// CreateComment 创建评论
func (r *commentRepository) CreateComment(ctx context.Context, tx *gorm.DB, comment *entities.Comment) error {
	if err := tx.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("创建评论失败: %w", err)
	}
	return nil
}

// GetCommentByID 根据 ID 获取评论
func (r *commentRepository) GetCommentByID(ctx context.Context, commentID uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询评论 (ID: %d) 失败: %w", commentID, err)
	}
	return &comment, nil
}

// ListCommentsByPostID 获取帖子下的全部评论
func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("查询帖子 (ID: %d) 的评论列表失败: %w", postID, err)
	}
	return comments, nil
}

// ListReplies 获取评论的直接子回复
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint64) ([]*entities.Comment, error) {
	var replies []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, fmt.Errorf("查询评论 (ID: %d) 的回复列表失败: %w", parentID, err)
	}
	return replies, nil
}

// UpdateComment 更新评论的昵称与内容
func (r *commentRepository) UpdateComment(ctx context.Context, commentID uint64, nickname, content string) error {
	result := r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("id = ?", commentID).
		Updates(map[string]interface{}{
			"nickname": nickname,
			"content":  content,
		})
	if result.Error != nil {
		return fmt.Errorf("更新评论 (ID: %d) 失败: %w", commentID, result.Error)
	}
	return nil
}

// ResolveDepth 沿父链回溯计算评论深度
func (r *commentRepository) ResolveDepth(ctx context.Context, tx *gorm.DB, commentID uint64, maxDepth int) (int, error) {
	depth := 0
	currentID := commentID
	for {
		var comment entities.Comment
		err := tx.WithContext(ctx).Select("id", "parent_id").First(&comment, currentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, commonerrors.ErrRepoNotFound
			}
			return 0, fmt.Errorf("回溯评论 (ID: %d) 的父链失败: %w", currentID, err)
		}
		if comment.ParentID == nil {
			return depth, nil
		}
		depth++
		if depth > maxDepth {
			// 深度越界，或父链成环（脏数据）。两种情况都拒绝继续回溯。
			return 0, myErrors.ErrDepthExceeded
		}
		currentID = *comment.ParentID
	}
}

// DeleteCommentTree 删除评论及其整棵子树
func (r *commentRepository) DeleteCommentTree(ctx context.Context, tx *gorm.DB, commentID uint64) (int64, error) {
	// 逐层收集子树的全部节点 ID。嵌套深度有硬上限，层数可控，
	// 无需依赖数据库的递归 CTE。
	toDelete := []uint64{commentID}
	frontier := []uint64{commentID}
	for len(frontier) > 0 {
		var childIDs []uint64
		err := tx.WithContext(ctx).Model(&entities.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &childIDs).Error
		if err != nil {
			return 0, fmt.Errorf("收集评论 (ID: %d) 的子树节点失败: %w", commentID, err)
		}
		toDelete = append(toDelete, childIDs...)
		frontier = childIDs
	}

	result := tx.WithContext(ctx).Where("id IN ?", toDelete).Delete(&entities.Comment{})
	if result.Error != nil {
		return 0, fmt.Errorf("删除评论子树 (根ID: %d) 失败: %w", commentID, result.Error)
	}
	return result.RowsAffected, nil
}
