package dto

// CreateCommentRequest 定义了创建评论/回复的请求数据结构
// - Password 是该评论后续编辑/删除的唯一凭证，服务端只做等值比较
// - ParentID 为空表示顶层评论；非空表示对某条评论的回复，
//   父评论必须属于同一个帖子，且回复后的嵌套深度不能超过上限
type CreateCommentRequest struct {
	Nickname string  `json:"nickname" binding:"required,max=50"`  // 展示昵称，必填
	Password string  `json:"password" binding:"required,max=255"` // 编辑/删除口令，必填
	Content  string  `json:"content" binding:"required"`          // 评论内容，必填
	ParentID *uint64 `json:"parentId" binding:"omitempty,gte=1"`  // 父评论ID，可选
}

// UpdateCommentRequest 定义了编辑评论的请求数据结构
// - 只允许修改昵称与内容，口令本身不可通过该接口变更
type UpdateCommentRequest struct {
	Nickname string `json:"nickname" binding:"required,max=50"`  // 新昵称，必填
	Password string `json:"password" binding:"required,max=255"` // 创建时设置的口令
	Content  string `json:"content" binding:"required"`          // 新内容，必填
}

// DeleteCommentRequest 定义了删除评论的请求数据结构
type DeleteCommentRequest struct {
	Password string `json:"password" binding:"required,max=255"` // 创建时设置的口令
}
