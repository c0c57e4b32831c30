// Package events 定义了帖子审核流转使用的 Kafka 事件结构。
// 生产者与消费者共用同一份定义，保证消息契约的一致性。
package events

import (
	"time"

	sharedEnums "github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/enums"
)

// PostData 是事件中携带的帖子快照。
// 审核服务只依赖这里的字段做内容判定，不回查数据库。
type PostData struct {
	ID       uint64             `json:"id"`       // 帖子ID
	Title    string             `json:"title"`    // 帖子标题
	Content  string             `json:"content"`  // 帖子正文
	Category enums.PostCategory `json:"category"` // 帖子分类
	Nickname string             `json:"nickname"` // 展示昵称
}

// PostPendingAuditEvent 帖子创建后进入待审核状态时发布的事件。
type PostPendingAuditEvent struct {
	EventID   string    `json:"event_id"`  // 事件唯一ID (UUID)，消费端用于幂等
	Timestamp time.Time `json:"timestamp"` // 事件产生时间
	Post      PostData  `json:"post"`      // 帖子快照
}

// PostAuditedEvent 审核服务回传的审核结果事件。
// Status 只会是已通过或已拒绝。
type PostAuditedEvent struct {
	EventID   string             `json:"event_id"`  // 事件唯一ID (UUID)
	Timestamp time.Time          `json:"timestamp"` // 事件产生时间
	PostID    uint64             `json:"post_id"`   // 被审核的帖子ID
	Status    sharedEnums.Status `json:"status"`    // 审核结果
	Reason    string             `json:"reason"`    // 拒绝原因，通过时为空
}

// PostDeletedEvent 帖子被删除（管理员操作或级联清理）时发布的事件，
// 供搜索/推荐等下游服务清理各自的索引。
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`  // 事件唯一ID (UUID)
	Timestamp time.Time `json:"timestamp"` // 事件产生时间
	PostID    uint64    `json:"post_id"`   // 被删除的帖子ID
}
