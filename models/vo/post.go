package vo

import (
	"time"

	sharedEnums "github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// PostResponse 定义了帖子基础信息的响应数据结构
type PostResponse struct {
	ID           uint64             `json:"id"`            // 帖子ID
	Title        string             `json:"title"`         // 帖子标题
	Category     enums.PostCategory `json:"category"`      // 帖子分类
	Nickname     string             `json:"nickname"`      // 展示昵称
	LikeCount    int64              `json:"like_count"`    // 点赞数
	ViewCount    int64              `json:"view_count"`    // 浏览量
	CommentCount int64              `json:"comment_count"` // 评论数
	IsPinned     bool               `json:"is_pinned"`     // 是否置顶
	Status       sharedEnums.Status `json:"status"`        // 帖子状态，0=待审核, 1=已审核, 2=拒绝
	CreatedAt    time.Time          `json:"created_at"`    // 创建时间
	UpdatedAt    time.Time          `json:"updated_at"`    // 更新时间
}

// PostDetailVO 定义了帖子详情页的完整视图对象。
type PostDetailVO struct {
	ID           uint64             `json:"id"`            // 帖子ID
	CreatedAt    time.Time          `json:"created_at"`    // 创建时间
	UpdatedAt    time.Time          `json:"updated_at"`    // 更新时间
	Title        string             `json:"title"`         // 帖子标题
	Content      string             `json:"content"`       // 帖子正文
	Category     enums.PostCategory `json:"category"`      // 帖子分类
	Nickname     string             `json:"nickname"`      // 展示昵称
	LikeCount    int64              `json:"like_count"`    // 点赞数
	ViewCount    int64              `json:"view_count"`    // 浏览量（数据库快照值，非实时）
	CommentCount int64              `json:"comment_count"` // 评论数
	IsPinned     bool               `json:"is_pinned"`     // 是否置顶
}

// ListPostPageVO 定义了公开帖子列表的分页查询响应结构。
// - 包含当前页的帖子列表和总记录数。
type ListPostPageVO struct {
	Posts []*PostResponse `json:"posts"` // 当前页的帖子列表
	Total int64           `json:"total"` // 符合条件的总记录数
}

// ListHotPostsByCursorResponse 查看热门帖子列表（基础信息）游标加载
type ListHotPostsByCursorResponse struct {
	Posts      []*PostResponse `json:"posts"`       // 帖子列表
	NextCursor *uint64         `json:"next_cursor"` // 下一个游标，nil 表示无更多数据
}

// ListPostsAdminByConditionResponse 定义管理员按条件查询帖子基础信息的响应结构体
type ListPostsAdminByConditionResponse struct {
	Posts []*AdminPostResponse `json:"posts"` // 帖子列表
	Total int64                `json:"total"` // 帖子总数
}

// AdminPostResponse 管理后台的帖子视图，比公开视图多出举报/隐藏/审核字段
type AdminPostResponse struct {
	PostResponse
	IsReported  bool    `json:"is_reported"`  // 是否被举报
	IsHidden    bool    `json:"is_hidden"`    // 是否隐藏
	AuditReason *string `json:"audit_reason"` // 审核原因 (如果 Status 为拒绝，则可能包含原因)
}

// ToggleLikeVO 定义了点赞开关的响应结构
type ToggleLikeVO struct {
	Liked     bool  `json:"liked"`      // 本次操作后的点赞状态：true=已点赞, false=已取消
	LikeCount int64 `json:"like_count"` // 操作后的帖子点赞总数
}

// MapPostToResponseVO 将单个帖子实体转换为公开视图对象。
func MapPostToResponseVO(post *entities.Post) *PostResponse {
	if post == nil {
		return nil
	}
	return &PostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Category:     post.Category,
		Nickname:     post.Nickname,
		LikeCount:    post.LikeCount,
		ViewCount:    post.ViewCount,
		CommentCount: post.CommentCount,
		IsPinned:     post.IsPinned,
		Status:       post.Status,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

// MapPostsToPostResponsesVO 是一个辅助函数，用于将帖子实体列表转换为帖子响应VO列表。
func MapPostsToPostResponsesVO(posts []*entities.Post) []*PostResponse {
	if len(posts) == 0 {
		return []*PostResponse{} // 返回空切片而不是nil，便于前端处理
	}

	responses := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查
			continue
		}
		responses = append(responses, MapPostToResponseVO(post))
	}
	return responses
}
