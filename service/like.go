package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// LikeService 定义了帖子点赞的业务逻辑接口。
type LikeService interface {
	// ToggleLike 对 (postID, identityKey) 执行点赞开关。
	// - 同一身份键重复调用在"已点赞/未点赞"之间来回切换，天然幂等。
	// - 点赞记录与帖子计数在同一事务中更新，计数采用重算而非增减，
	//   保证 like_count 与点赞记录表严格一致。
	// - 返回操作后的点赞状态与最新计数。
	ToggleLike(ctx context.Context, postID uint64, identityKey string) (*vo.ToggleLikeVO, error)
}

// likeService 是 LikeService 接口的具体实现。
type likeService struct {
	db           *gorm.DB
	postRepo     mysql.PostRepository
	postLikeRepo mysql.PostLikeRepository
	logger       *core.ZapLogger
}

// NewLikeService 是 likeService 的构造函数。
func NewLikeService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	postLikeRepo mysql.PostLikeRepository,
	logger *core.ZapLogger,
) LikeService {
	return &likeService{
		db:           db,
		postRepo:     postRepo,
		postLikeRepo: postLikeRepo,
		logger:       logger,
	}
}

// ToggleLike 执行点赞开关。
func (s *likeService) ToggleLike(ctx context.Context, postID uint64, identityKey string) (*vo.ToggleLikeVO, error) {
	// 1. 目标帖子必须存在
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("点赞的目标帖子不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("检查点赞目标帖子失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return nil, err
	}

	// 2. 事务内完成开关与计数回写
	var result vo.ToggleLikeVO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		liked, likeCount, repoErr := s.postLikeRepo.TogglePostLike(ctx, tx, postID, identityKey)
		if repoErr != nil {
			return repoErr
		}
		result.Liked = liked
		result.LikeCount = likeCount
		return nil
	})
	if err != nil {
		s.logger.Error("点赞开关事务失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}

	s.logger.Debug("点赞开关处理完成",
		zap.Uint64("postID", postID),
		zap.Bool("liked", result.Liked),
		zap.Int64("likeCount", result.LikeCount),
	)
	return &result, nil
}
