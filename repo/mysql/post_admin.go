package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
)

// PostAdminRepository 定义了管理员侧帖子操作的数据库接口
type PostAdminRepository interface {
	// UpdatePostStatus 更新帖子的审核状态与原因。
	// - 审核拒绝时由服务层决定是否同时隐藏帖子。
	UpdatePostStatus(ctx context.Context, postID uint64, status sharedEnums.Status, reason string, hide bool) error

	// SetPinned 置顶或取消置顶帖子。
	SetPinned(ctx context.Context, postID uint64, pinned bool) error

	// SetHidden 隐藏或恢复展示帖子。
	SetHidden(ctx context.Context, postID uint64, hidden bool) error

	// ListPostsByCondition 管理员按组合条件分页查询帖子（不过滤隐藏/拒绝状态）。
	ListPostsByCondition(ctx context.Context, query *dto.ListPostsByConditionRequest) ([]*entities.Post, int64, error)
}

// postAdminRepository 是 PostAdminRepository 接口的 GORM 实现
type postAdminRepository struct {
	db *gorm.DB
}

// NewPostAdminRepository 创建 PostAdminRepository 实例
func NewPostAdminRepository(db *gorm.DB) PostAdminRepository {
	return &postAdminRepository{db: db}
}

// UpdatePostStatus 更新帖子的审核状态
func (r *postAdminRepository) UpdatePostStatus(ctx context.Context, postID uint64, status sharedEnums.Status, reason string, hide bool) error {
	updates := map[string]interface{}{
		"status":       status,
		"audit_reason": sql.NullString{String: reason, Valid: reason != ""},
	}
	if hide {
		updates["is_hidden"] = true
	}

	result := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新帖子 (ID: %d) 审核状态失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SetPinned 置顶/取消置顶帖子
func (r *postAdminRepository) SetPinned(ctx context.Context, postID uint64, pinned bool) error {
	return r.updateFlag(ctx, postID, "is_pinned", pinned)
}

// SetHidden 隐藏/恢复展示帖子
func (r *postAdminRepository) SetHidden(ctx context.Context, postID uint64, hidden bool) error {
	return r.updateFlag(ctx, postID, "is_hidden", hidden)
}

// updateFlag 更新帖子上的单个布尔开关字段
func (r *postAdminRepository) updateFlag(ctx context.Context, postID uint64, column string, value bool) error {
	result := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("更新帖子 (ID: %d) 的 %s 字段失败: %w", postID, column, result.Error)
	}
	if result.RowsAffected == 0 {
		// 目标值与当前值相同时 MySQL 也返回 0，回查确认帖子确实不存在再报错。
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

// ListPostsByCondition 管理员按组合条件分页查询帖子
func (r *postAdminRepository) ListPostsByCondition(ctx context.Context, query *dto.ListPostsByConditionRequest) ([]*entities.Post, int64, error) {
	db := r.db.WithContext(ctx).Model(&entities.Post{})

	if query.ID != nil {
		db = db.Where("id = ?", *query.ID)
	}
	if query.Title != nil && *query.Title != "" {
		db = db.Where("title LIKE ?", "%"+*query.Title+"%")
	}
	if query.Category != nil {
		db = db.Where("category = ?", *query.Category)
	}
	if query.Status != nil {
		db = db.Where("status = ?", *query.Status)
	}
	if query.IsReported != nil {
		db = db.Where("is_reported = ?", *query.IsReported)
	}
	if query.IsHidden != nil {
		db = db.Where("is_hidden = ?", *query.IsHidden)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计符合条件的帖子总数失败: %w", err)
	}

	// 排序字段白名单，防止拼接任意列名
	orderBy := "created_at"
	if query.OrderBy == "updated_at" {
		orderBy = "updated_at"
	}
	direction := "ASC"
	if query.OrderDesc {
		direction = "DESC"
	}

	var posts []*entities.Post
	offset := (query.Page - 1) * query.PageSize
	err := db.Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset(offset).
		Limit(query.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("按条件查询帖子列表失败: %w", err)
	}
	return posts, total, nil
}
