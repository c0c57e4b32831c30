package dto

import (
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/enums"
)

// ListPostsByConditionRequest 定义管理员分页条件查询帖子的请求数据结构
type ListPostsByConditionRequest struct {
	ID         *uint64             `form:"id" json:"id,omitempty"`                                  // 帖子ID，若存在则按主键查询，可选
	Title      *string             `form:"title" json:"title,omitempty"`                            // 标题模糊查询，可选
	Category   *enums.PostCategory `form:"category" json:"category,omitempty" swaggertype:"integer"` // 分类筛选，可选
	Status     *sharedEnums.Status `form:"status" json:"status,omitempty" swaggertype:"integer"`    // 状态筛选，可选（0=待审核, 1=已审核, 2=拒绝）
	IsReported *bool               `form:"is_reported" json:"is_reported,omitempty"`                // 只看被举报的帖子，可选
	IsHidden   *bool               `form:"is_hidden" json:"is_hidden,omitempty"`                    // 只看隐藏/未隐藏的帖子，可选
	OrderBy    string              `form:"order_by" json:"order_by"`                                // 排序字段（created_at 或 updated_at），默认 created_at
	OrderDesc  bool                `form:"order_desc" json:"order_desc"`                            // 是否降序，true 为降序
	Page       int                 `form:"page" json:"page" binding:"required,gt=0"`                // 页码，从 1 开始，必填
	PageSize   int                 `form:"page_size" json:"page_size" binding:"required,gt=0"`      // 每页大小，必填
}

// AuditPostRequest 定义审核帖子的请求数据结构
type AuditPostRequest struct {
	PostID uint64 `json:"post_id" binding:"required" example:"123"`
	// Status 表示帖子的审核状态。
	// 0: 待审核 (Pending)
	// 1: 审核通过 (Approved)
	// 2: 拒绝 (Rejected)
	Status sharedEnums.Status `json:"status" binding:"min=0,max=2" swaggertype:"integer"`
	Reason string             `json:"reason" binding:"omitempty,max=255" example:"内容符合规范"`
}

// PinPostRequest 定义管理员置顶/取消置顶帖子的请求数据结构
type PinPostRequest struct {
	PostID uint64 `json:"post_id" binding:"required"` // 帖子ID，必填
	Pinned bool   `json:"pinned"`                     // true=置顶, false=取消置顶
}

// HidePostRequest 定义管理员隐藏/恢复帖子的请求数据结构
type HidePostRequest struct {
	PostID uint64 `json:"post_id" binding:"required"` // 帖子ID，必填
	Hidden bool   `json:"hidden"`                     // true=隐藏, false=恢复展示
}
