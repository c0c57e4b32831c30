package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// PostAdminService 定义了管理员侧帖子管理的业务逻辑接口。
type PostAdminService interface {
	// AuditPost 审核帖子：写入审核状态与原因。
	// - 审核拒绝的帖子会同时被隐藏，不再出现在任何公开视图中。
	AuditPost(ctx context.Context, req *dto.AuditPostRequest) error

	// ListPostsByCondition 按组合条件分页查询帖子（含隐藏帖与拒绝帖）。
	ListPostsByCondition(ctx context.Context, req *dto.ListPostsByConditionRequest) (*vo.ListPostsAdminByConditionResponse, error)

	// PinPost 置顶或取消置顶帖子。置顶帖在公开列表中排在最前。
	PinPost(ctx context.Context, req *dto.PinPostRequest) error

	// HidePost 隐藏或恢复展示帖子。
	HidePost(ctx context.Context, req *dto.HidePostRequest) error
}

// postAdminService 是 PostAdminService 接口的具体实现。
type postAdminService struct {
	adminRepo mysql.PostAdminRepository
	logger    *core.ZapLogger
}

// NewPostAdminService 是 postAdminService 的构造函数。
func NewPostAdminService(adminRepo mysql.PostAdminRepository, logger *core.ZapLogger) PostAdminService {
	return &postAdminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// AuditPost 审核帖子。
func (s *postAdminService) AuditPost(ctx context.Context, req *dto.AuditPostRequest) error {
	// 拒绝的帖子同时隐藏，保证公开视图立即收敛。
	hide := req.Status == sharedEnums.Rejected

	err := s.adminRepo.UpdatePostStatus(ctx, req.PostID, req.Status, req.Reason, hide)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("审核的帖子不存在", zap.Uint64("postID", req.PostID))
		} else {
			s.logger.Error("更新帖子审核状态失败", zap.Error(err), zap.Uint64("postID", req.PostID))
		}
		return err
	}

	s.logger.Info("帖子审核状态已更新",
		zap.Uint64("postID", req.PostID),
		zap.Int("status", int(req.Status)),
		zap.Bool("hidden", hide),
	)
	return nil
}

// ListPostsByCondition 按组合条件分页查询帖子。
func (s *postAdminService) ListPostsByCondition(ctx context.Context, req *dto.ListPostsByConditionRequest) (*vo.ListPostsAdminByConditionResponse, error) {
	posts, total, err := s.adminRepo.ListPostsByCondition(ctx, req)
	if err != nil {
		s.logger.Error("管理员按条件查询帖子列表失败", zap.Error(err))
		return nil, err
	}

	adminPosts := make([]*vo.AdminPostResponse, 0, len(posts))
	for _, post := range posts {
		adminPosts = append(adminPosts, mapPostToAdminResponseVO(post))
	}

	return &vo.ListPostsAdminByConditionResponse{
		Posts: adminPosts,
		Total: total,
	}, nil
}

// PinPost 置顶或取消置顶帖子。
func (s *postAdminService) PinPost(ctx context.Context, req *dto.PinPostRequest) error {
	if err := s.adminRepo.SetPinned(ctx, req.PostID, req.Pinned); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("置顶的帖子不存在", zap.Uint64("postID", req.PostID))
		} else {
			s.logger.Error("更新帖子置顶状态失败", zap.Error(err), zap.Uint64("postID", req.PostID))
		}
		return err
	}
	s.logger.Info("帖子置顶状态已更新", zap.Uint64("postID", req.PostID), zap.Bool("pinned", req.Pinned))
	return nil
}

// HidePost 隐藏或恢复展示帖子。
func (s *postAdminService) HidePost(ctx context.Context, req *dto.HidePostRequest) error {
	if err := s.adminRepo.SetHidden(ctx, req.PostID, req.Hidden); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("隐藏的帖子不存在", zap.Uint64("postID", req.PostID))
		} else {
			s.logger.Error("更新帖子隐藏状态失败", zap.Error(err), zap.Uint64("postID", req.PostID))
		}
		return err
	}
	s.logger.Info("帖子隐藏状态已更新", zap.Uint64("postID", req.PostID), zap.Bool("hidden", req.Hidden))
	return nil
}

// mapPostToAdminResponseVO 将帖子实体转换为管理后台视图对象。
func mapPostToAdminResponseVO(post *entities.Post) *vo.AdminPostResponse {
	resp := &vo.AdminPostResponse{
		PostResponse: *vo.MapPostToResponseVO(post),
		IsReported:   post.IsReported,
		IsHidden:     post.IsHidden,
	}
	if post.AuditReason.Valid {
		reason := post.AuditReason.String
		resp.AuditReason = &reason
	}
	return resp
}
