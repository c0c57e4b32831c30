package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// PostService 定义了处理帖子核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理匿名用户发布新帖子的业务流程。
	// - 未填写昵称时由服务端随机合成一个展示昵称。
	// - 新帖子初始为待审核状态，成功创建后异步触发 Kafka 事件通知审核服务。
	// - 返回 VO，包含成功创建的帖子信息。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostDetailVO, error)

	// GetPostByID 获取单个帖子的详情。
	// - 优先读热点详情缓存，未命中时回源数据库。
	// - 隐藏帖与审核拒绝帖对公开访问不可见（返回 commonerrors.ErrRepoNotFound）。
	// - 异步按请求方身份键增加浏览计数（Bloom Filter 防刷）。
	GetPostByID(ctx context.Context, postID uint64, identityKey string) (*vo.PostDetailVO, error)

	// ReportPost 举报帖子，将其标记给管理员处理。重复举报幂等。
	ReportPost(ctx context.Context, postID uint64) error

	// DeletePost 删除帖子。
	// - 在同一事务中软删除帖子并级联清理其全部评论。
	// - 异步触发 Kafka 事件通知下游服务（如搜索引擎）进行数据同步。
	DeletePost(ctx context.Context, postID uint64) error
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db           *gorm.DB                 // GORM 数据库实例，主要用于事务管理
	postRepo     mysql.PostRepository     // 负责帖子的 MySQL 操作
	commentRepo  mysql.CommentRepository  // 负责评论的 MySQL 操作（级联删除用）
	postViewRepo redis.PostViewRepository // 负责帖子浏览量相关的 Redis 操作
	cache        redis.Cache              // 热点详情缓存
	kafkaSvc     *producer.KafkaProducer  // Kafka 生产者，用于发送异步消息
	nicknameGen  *NicknameGenerator       // 随机昵称生成器
	logger       *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	commentRepo mysql.CommentRepository,
	postViewRepo redis.PostViewRepository,
	cache redis.Cache,
	kafkaSvc *producer.KafkaProducer,
	nicknameGen *NicknameGenerator,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		postViewRepo: postViewRepo,
		cache:        cache,
		kafkaSvc:     kafkaSvc,
		nicknameGen:  nicknameGen,
		logger:       logger,
	}
}

// CreatePost 处理匿名用户创建新帖子的请求。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostDetailVO, error) {
	// 1. 昵称为空时合成随机昵称
	nickname := s.nicknameGen.OrDefault(req.Nickname)

	// 2. 在事务中创建帖子
	post := &entities.Post{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Nickname: nickname,
		Status:   sharedEnums.Pending, // 默认为待审核
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.postRepo.CreatePost(ctx, tx, post)
	})
	if err != nil {
		s.logger.Error("创建帖子事务失败", zap.Error(err))
		return nil, err
	}

	// 3. 异步发送 Kafka 待审核事件
	postDataForKafka := events.PostData{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Category: post.Category,
		Nickname: post.Nickname,
	}
	if s.kafkaSvc != nil {
		go func(pd events.PostData) {
			bgCtx := context.Background() // 为后台 goroutine 创建新的上下文
			if kafkaErr := s.kafkaSvc.SendPostPendingAuditEvent(bgCtx, pd); kafkaErr != nil {
				s.logger.Error("发送 Kafka 帖子待审核事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", pd.ID))
			} else {
				s.logger.Info("成功发送 Kafka 帖子待审核事件", zap.Uint64("post_id", pd.ID))
			}
		}(postDataForKafka)
	} else {
		s.logger.Warn("Kafka 生产者未配置，跳过发送待审核事件", zap.Uint64("post_id", post.ID))
	}

	// 4. 构建并返回详情 VO
	return &vo.PostDetailVO{
		ID:        post.ID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category,
		Nickname:  post.Nickname,
	}, nil
}

// GetPostByID 实现获取帖子详情的逻辑。
func (s *postService) GetPostByID(ctx context.Context, postID uint64, identityKey string) (*vo.PostDetailVO, error) {
	// 1. 优先读热点详情缓存
	var detailVO *vo.PostDetailVO
	if s.cache != nil {
		var cacheErr error
		detailVO, cacheErr = s.cache.GetPostDetail(ctx, postID)
		if cacheErr != nil && !errors.Is(cacheErr, myErrors.ErrCacheMiss) {
			// 缓存层故障不阻断请求，降级回源数据库。
			s.logger.Warn("读取帖子详情缓存出错，降级回源数据库", zap.Error(cacheErr), zap.Uint64("postID", postID))
		}
	}

	if detailVO == nil {
		// 2. 缓存未命中，回源数据库
		post, err := s.postRepo.GetPostByID(ctx, postID)
		if err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("帖子未找到", zap.Uint64("postID", postID))
			} else {
				s.logger.Error("获取帖子失败", zap.Error(err), zap.Uint64("postID", postID))
			}
			return nil, err
		}

		// 隐藏帖与审核拒绝帖对公开访问表现为不存在。
		if post.IsHidden || post.Status == sharedEnums.Rejected {
			s.logger.Info("帖子对公开访问不可见",
				zap.Uint64("postID", postID),
				zap.Bool("isHidden", post.IsHidden),
				zap.Int("status", int(post.Status)),
			)
			return nil, commonerrors.ErrRepoNotFound
		}

		detailVO = &vo.PostDetailVO{
			ID:           post.ID,
			CreatedAt:    post.CreatedAt,
			UpdatedAt:    post.UpdatedAt,
			Title:        post.Title,
			Content:      post.Content,
			Category:     post.Category,
			Nickname:     post.Nickname,
			LikeCount:    post.LikeCount,
			ViewCount:    post.ViewCount, // 数据库快照值，不含尚未落库的实时增量
			CommentCount: post.CommentCount,
			IsPinned:     post.IsPinned,
		}
	}

	// 3. 异步增加浏览计数
	if identityKey == "" || s.postViewRepo == nil {
		s.logger.Warn("未解析出请求方身份键或浏览计数仓库不可用，跳过增加浏览量", zap.Uint64("postID", postID))
	} else {
		go func(pID uint64, key string) {
			// 使用独立的 context.Background()，增加浏览量不应阻塞主流程，
			// 其生命周期独立于原始请求。
			if redisErr := s.postViewRepo.IncrementViewCount(context.Background(), pID, key); redisErr != nil {
				s.logger.Error("异步增加浏览量失败",
					zap.Error(redisErr),
					zap.Uint64("post_id", pID),
				)
			}
		}(postID, identityKey)
	}

	return detailVO, nil
}

// ReportPost 实现举报帖子的逻辑。
func (s *postService) ReportPost(ctx context.Context, postID uint64) error {
	if err := s.postRepo.MarkReported(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("举报的帖子不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("标记帖子被举报失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return err
	}
	s.logger.Info("帖子已被举报，等待管理员处理", zap.Uint64("postID", postID))
	return nil
}

// DeletePost 实现帖子的软删除逻辑，评论随帖子级联清理。
func (s *postService) DeletePost(ctx context.Context, postID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. (软)删除帖子主记录
		if repoErr := s.postRepo.DeletePost(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除帖子主记录失败: %w", repoErr)
		}

		// 2. (软)删除帖子下的全部评论
		result := tx.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.Comment{})
		if result.Error != nil {
			return fmt.Errorf("级联删除帖子评论失败: %w", result.Error)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("删除帖子事务失败", zap.Error(err), zap.Uint64("post_id", postID))
		return err
	}

	// 3. 异步发送 Kafka 删除事件。
	if s.kafkaSvc != nil {
		go func(postIDToNotify uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendPostDeleteEvent(bgCtx, postIDToNotify); kafkaErr != nil {
				s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", postIDToNotify))
			} else {
				s.logger.Info("成功发送 Kafka 删除事件", zap.Uint64("post_id", postIDToNotify))
			}
		}(postID)
	}

	s.logger.Info("帖子及其评论（软）删除请求处理完成", zap.Uint64("post_id", postID))
	return nil
}
