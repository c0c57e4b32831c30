package dto

import (
	"github.com/Xushengqwer/community_service/models/enums"
)

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 添加了 binding 标签用于输入验证
// - 匿名发帖：不携带任何账号信息，Nickname 为空时由服务端随机合成
type CreatePostRequest struct {
	Title    string             `json:"title" binding:"required,max=255"`                  // 帖子标题，必填，最大255字符
	Content  string             `json:"content" binding:"required"`                        // 帖子正文，必填
	Category enums.PostCategory `json:"category" binding:"min=0,max=5" swaggertype:"integer"` // 帖子分类，0=公告 1=提问 2=经验分享 3=自由 4=资料 5=其他
	Nickname string             `json:"nickname" binding:"omitempty,max=50"`               // 展示昵称，可选，留空时服务端生成
}

// ListPostsRequest 定义了公开帖子列表的查询参数（分页）
// - 隐藏帖与被拒帖不会出现在结果中；置顶帖排在最前
type ListPostsRequest struct {
	Search   *string             `form:"search" binding:"omitempty,max=255"`                  // 标题/正文模糊搜索关键词，可选
	Category *enums.PostCategory `form:"category" binding:"omitempty,min=0,max=5" swaggertype:"integer"` // 分类筛选，可选
	Page     int                 `form:"page" binding:"required,gte=1"`                       // 页码，从 1 开始
	PageSize int                 `form:"pageSize" binding:"required,gte=1,lte=100"`           // 每页数量，1~100
}

// GetOffset 计算分页偏移量。
// - (page - 1) * pageSize
func (dto *ListPostsRequest) GetOffset() int {
	if dto.Page <= 0 {
		return 0
	}
	return (dto.Page - 1) * dto.PageSize
}

// GetLimit 获取每页数量。
func (dto *ListPostsRequest) GetLimit() int {
	return dto.PageSize
}
