package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// PostResponseWrapper 对应 response.APIResponse[vo.PostResponse]
type PostResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostResponse `json:"data"`
}

// PostDetailResponseWrapper 对应 response.APIResponse[vo.PostDetailVO]
type PostDetailResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostDetailVO `json:"data"`
}

// ListPostPageResponseWrapper 对应 response.APIResponse[vo.ListPostPageVO]
type ListPostPageResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    ListPostPageVO `json:"data"`
}

// ListPostsByCursorResponseWrapper 对应 response.APIResponse[vo.ListHotPostsByCursorResponse]
type ListPostsByCursorResponseWrapper struct {
	Code    int                          `json:"code" example:"0"`
	Message string                       `json:"message,omitempty" example:"success"`
	Data    ListHotPostsByCursorResponse `json:"data"`
}

// ListPostsAdminResponseWrapper 对应 response.APIResponse[vo.ListPostsAdminByConditionResponse]
type ListPostsAdminResponseWrapper struct {
	Code    int                               `json:"code" example:"0"`
	Message string                            `json:"message,omitempty" example:"success"`
	Data    ListPostsAdminByConditionResponse `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentResponse]
type CommentResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    CommentResponse `json:"data"`
}

// CommentListResponseWrapper 对应 response.APIResponse[[]*vo.CommentResponse]
type CommentListResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    []*CommentResponse `json:"data"`
}

// ToggleLikeResponseWrapper 对应 response.APIResponse[vo.ToggleLikeVO]
type ToggleLikeResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    ToggleLikeVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
