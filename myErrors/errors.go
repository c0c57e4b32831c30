package myErrors

import (
	"errors"
	"fmt"

	"github.com/Xushengqwer/community_service/constant"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrSecretMismatch 表示编辑/删除评论时出示的口令与存储的口令不一致。
// 注意: 对外的错误信息不应透露"评论存在但口令错误"之外的任何细节。
var ErrSecretMismatch = errors.New("comment: secret mismatch")

// ErrDepthExceeded 表示回复会使评论嵌套深度超过 constant.MaxCommentDepth。
// 深度校验是服务端硬性规则，不依赖客户端的楼层控制；错误信息携带上限值，
// 方便调用方直接透传给用户。
var ErrDepthExceeded = fmt.Errorf("comment: nesting depth exceeded (max %d)", constant.MaxCommentDepth)

// ErrParentMismatch 表示回复的父评论属于另一个帖子（跨帖回复）。
var ErrParentMismatch = errors.New("comment: parent belongs to a different post")
