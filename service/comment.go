package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// CommentService 定义了匿名评论的核心业务逻辑接口。
// 评论没有账号体系：创建时设置一个口令 (Password)，后续的编辑与删除
// 都以口令等值匹配作为唯一的操作凭证。
type CommentService interface {
	// CreateComment 在指定帖子下创建评论或回复。
	// - 帖子必须存在；ParentID 非空时父评论必须存在且属于同一帖子
	//   (否则返回 myErrors.ErrParentMismatch)。
	// - 回复的嵌套深度超过上限时返回 myErrors.ErrDepthExceeded。
	// - 评论创建与帖子评论计数 +1 在同一事务中完成。
	CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error)

	// UpdateComment 编辑评论的昵称与内容。
	// - 口令不匹配时返回 myErrors.ErrSecretMismatch，评论保持原样。
	UpdateComment(ctx context.Context, commentID uint64, req *dto.UpdateCommentRequest) (*vo.CommentResponse, error)

	// DeleteComment 删除评论及其整棵回复子树（级联删除）。
	// - 口令不匹配时返回 myErrors.ErrSecretMismatch。
	// - 子树删除与帖子评论计数扣减在同一事务中完成。
	DeleteComment(ctx context.Context, commentID uint64, req *dto.DeleteCommentRequest) error

	// ListCommentsByPostID 获取帖子的全部评论（含各层回复），按创建顺序排列的
	// 扁平列表。树形结构由读取侧按 ParentID 重建（见 vo.BuildCommentTree）。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentResponse, error)

	// ListReplies 获取指定评论的直接子回复，按创建顺序排列。
	ListReplies(ctx context.Context, commentID uint64) ([]*vo.CommentResponse, error)
}

// commentService 是 CommentService 接口的具体实现。
type commentService struct {
	db          *gorm.DB
	commentRepo mysql.CommentRepository
	postRepo    mysql.PostRepository
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	db *gorm.DB,
	commentRepo mysql.CommentRepository,
	postRepo mysql.PostRepository,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// verifySecret 对口令做常数时间等值比较。
// 口令只是一个轻量凭证，不做哈希存储是刻意的取舍（见实体定义），
// 但比较本身仍避免留下时序侧信道。
func verifySecret(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}

// CreateComment 创建评论或回复。
func (s *commentService) CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error) {
	// 1. 目标帖子必须存在
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("评论的目标帖子不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("检查评论目标帖子失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return nil, err
	}

	// 评论昵称是必填项（与帖子不同，帖子留空时才由服务端合成）。
	comment := &entities.Comment{
		PostID:   postID,
		ParentID: req.ParentID,
		Nickname: req.Nickname,
		Content:  req.Content,
		Secret:   req.Password,
	}

	// 2. 校验与写入放在同一事务里：父评论归属、深度上限、创建、计数 +1。
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.ParentID != nil {
			parent, repoErr := s.commentRepo.GetCommentByID(ctx, *req.ParentID)
			if repoErr != nil {
				if errors.Is(repoErr, commonerrors.ErrRepoNotFound) {
					// 父评论不存在视为归属校验失败
					return myErrors.ErrParentMismatch
				}
				return repoErr
			}
			if parent.PostID != postID {
				return myErrors.ErrParentMismatch
			}

			// 父评论深度 + 1 即新回复的深度，超过上限直接拒绝。
			parentDepth, depthErr := s.commentRepo.ResolveDepth(ctx, tx, parent.ID, constant.MaxCommentDepth)
			if depthErr != nil {
				return depthErr
			}
			if parentDepth+1 > constant.MaxCommentDepth {
				return myErrors.ErrDepthExceeded
			}
		}

		if repoErr := s.commentRepo.CreateComment(ctx, tx, comment); repoErr != nil {
			return repoErr
		}
		return s.postRepo.IncrementCommentCount(ctx, tx, postID, 1)
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrDepthExceeded) || errors.Is(err, myErrors.ErrParentMismatch) {
			s.logger.Warn("创建评论被校验拒绝",
				zap.Error(err),
				zap.Uint64("postID", postID),
				zap.Any("parentID", req.ParentID),
			)
		} else {
			s.logger.Error("创建评论事务失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return nil, err
	}

	return vo.NewCommentResponseFromEntity(comment), nil
}

// UpdateComment 编辑评论。
func (s *commentService) UpdateComment(ctx context.Context, commentID uint64, req *dto.UpdateCommentRequest) (*vo.CommentResponse, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("编辑的评论不存在", zap.Uint64("commentID", commentID))
		} else {
			s.logger.Error("获取待编辑评论失败", zap.Error(err), zap.Uint64("commentID", commentID))
		}
		return nil, err
	}

	if !verifySecret(comment.Secret, req.Password) {
		s.logger.Warn("编辑评论口令不匹配", zap.Uint64("commentID", commentID))
		return nil, myErrors.ErrSecretMismatch
	}

	if err := s.commentRepo.UpdateComment(ctx, commentID, req.Nickname, req.Content); err != nil {
		s.logger.Error("更新评论失败", zap.Error(err), zap.Uint64("commentID", commentID))
		return nil, err
	}

	// 回读更新后的评论，保证返回的 UpdatedAt 等字段是最新值。
	updated, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		s.logger.Error("回读更新后的评论失败", zap.Error(err), zap.Uint64("commentID", commentID))
		return nil, err
	}
	return vo.NewCommentResponseFromEntity(updated), nil
}

// DeleteComment 删除评论及其整棵回复子树。
func (s *commentService) DeleteComment(ctx context.Context, commentID uint64, req *dto.DeleteCommentRequest) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("删除的评论不存在", zap.Uint64("commentID", commentID))
		} else {
			s.logger.Error("获取待删除评论失败", zap.Error(err), zap.Uint64("commentID", commentID))
		}
		return err
	}

	if !verifySecret(comment.Secret, req.Password) {
		s.logger.Warn("删除评论口令不匹配", zap.Uint64("commentID", commentID))
		return myErrors.ErrSecretMismatch
	}

	var deletedCount int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, repoErr := s.commentRepo.DeleteCommentTree(ctx, tx, commentID)
		if repoErr != nil {
			return repoErr
		}
		deletedCount = count
		// 评论计数按实际删除的子树条数扣减，与级联删除保持在同一事务。
		return s.postRepo.IncrementCommentCount(ctx, tx, comment.PostID, -count)
	})
	if err != nil {
		s.logger.Error("删除评论事务失败", zap.Error(err), zap.Uint64("commentID", commentID))
		return err
	}

	s.logger.Info("评论及其子树已删除",
		zap.Uint64("commentID", commentID),
		zap.Uint64("postID", comment.PostID),
		zap.Int64("deletedCount", deletedCount),
	)
	return nil
}

// ListCommentsByPostID 获取帖子的扁平评论列表。
func (s *commentService) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentResponse, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("查询评论的目标帖子不存在", zap.Uint64("postID", postID))
			return nil, err
		}
		return nil, fmt.Errorf("检查帖子 (ID: %d) 是否存在失败: %w", postID, err)
	}

	comments, err := s.commentRepo.ListCommentsByPostID(ctx, postID)
	if err != nil {
		s.logger.Error("获取帖子评论列表失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}

	return vo.NewCommentResponsesFromEntities(comments), nil
}

// ListReplies 获取评论的直接子回复。
func (s *commentService) ListReplies(ctx context.Context, commentID uint64) ([]*vo.CommentResponse, error) {
	if _, err := s.commentRepo.GetCommentByID(ctx, commentID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("查询回复的目标评论不存在", zap.Uint64("commentID", commentID))
		}
		return nil, err
	}

	replies, err := s.commentRepo.ListReplies(ctx, commentID)
	if err != nil {
		s.logger.Error("获取评论回复列表失败", zap.Error(err), zap.Uint64("commentID", commentID))
		return nil, err
	}
	return vo.NewCommentResponsesFromEntities(replies), nil
}
