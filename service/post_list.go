package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// PostListService 定义了公开帖子列表的查询逻辑接口。
type PostListService interface {
	// ListPosts 分页获取公开可见的帖子列表。
	// - 隐藏帖与审核拒绝帖不会出现在结果中。
	// - 置顶帖排在最前，其余按创建时间倒序。
	// - 支持标题/正文模糊搜索与分类筛选。
	ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostPageVO, error)
}

// postListService 是 PostListService 接口的具体实现。
type postListService struct {
	postRepo mysql.PostRepository
	logger   *core.ZapLogger
}

// NewPostListService 是 postListService 的构造函数。
func NewPostListService(postRepo mysql.PostRepository, logger *core.ZapLogger) PostListService {
	return &postListService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// ListPosts 分页获取公开可见的帖子列表。
func (s *postListService) ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostPageVO, error) {
	posts, total, err := s.postRepo.ListVisiblePosts(ctx, req)
	if err != nil {
		s.logger.Error("查询公开帖子列表失败",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("pageSize", req.PageSize),
		)
		return nil, err
	}

	return &vo.ListPostPageVO{
		Posts: vo.MapPostsToPostResponsesVO(posts),
		Total: total,
	}, nil
}
