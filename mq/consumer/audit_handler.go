package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/service"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// --- ApprovedAuditHandler ---

// ApprovedAuditHandler 消费审核通过事件，将帖子状态落为已通过。
type ApprovedAuditHandler struct {
	logger           *core.ZapLogger
	postAdminService service.PostAdminService
}

func NewApprovedAuditHandler(logger *core.ZapLogger, postAdminService service.PostAdminService) *ApprovedAuditHandler {
	return &ApprovedAuditHandler{
		logger:           logger,
		postAdminService: postAdminService,
	}
}

func (h *ApprovedAuditHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("ApprovedAuditHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.PostAuditedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ApprovedAuditHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("ApprovedAuditHandler: 成功解析审核通过消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.PostID))

	auditRequest := &dto.AuditPostRequest{
		PostID: event.PostID,
		Status: sharedEnums.Approved,
		Reason: "",
	}

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.postAdminService.AuditPost(updateCtx, auditRequest); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("ApprovedAuditHandler: 尝试更新不存在或已删除的帖子状态", zap.Uint64("post_id", event.PostID))
			return nil // 不再重试
		}
		h.logger.Error("ApprovedAuditHandler: 更新帖子状态为已通过失败", zap.Error(err), zap.Uint64("post_id", event.PostID))
		return fmt.Errorf("ApprovedAuditHandler: 调用 AuditPost 失败: %w", err)
	}

	h.logger.Info("ApprovedAuditHandler: 成功更新帖子状态为已通过", zap.Uint64("post_id", event.PostID))
	return nil
}

// --- RejectedAuditHandler ---

// RejectedAuditHandler 消费审核拒绝事件，将帖子状态落为已拒绝并隐藏。
type RejectedAuditHandler struct {
	logger           *core.ZapLogger
	postAdminService service.PostAdminService
}

func NewRejectedAuditHandler(logger *core.ZapLogger, postAdminService service.PostAdminService) *RejectedAuditHandler {
	return &RejectedAuditHandler{
		logger:           logger,
		postAdminService: postAdminService,
	}
}

func (h *RejectedAuditHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("RejectedAuditHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.PostAuditedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("RejectedAuditHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	reason := event.Reason
	const maxReasonLength = 250 // 数据库字段长度为 255
	if len(reason) > maxReasonLength {
		reason = reason[:maxReasonLength] + "..."
	}

	h.logger.Info("RejectedAuditHandler: 成功解析审核拒绝消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.PostID),
		zap.String("reason", reason))

	auditRequest := &dto.AuditPostRequest{
		PostID: event.PostID,
		Status: sharedEnums.Rejected,
		Reason: reason,
	}

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.postAdminService.AuditPost(updateCtx, auditRequest); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("RejectedAuditHandler: 尝试更新不存在或已删除的帖子状态", zap.Uint64("post_id", event.PostID))
			return nil // 不再重试
		}
		h.logger.Error("RejectedAuditHandler: 更新帖子状态为已拒绝失败",
			zap.Error(err),
			zap.Uint64("post_id", event.PostID),
			zap.String("reason", reason))
		return fmt.Errorf("RejectedAuditHandler: 调用 AuditPost 失败: %w", err)
	}

	h.logger.Info("RejectedAuditHandler: 成功更新帖子状态为已拒绝", zap.Uint64("post_id", event.PostID))
	return nil
}
