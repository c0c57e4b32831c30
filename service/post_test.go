package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// newTestPostService 构造一个不挂 Redis/Kafka 的帖子服务，
// 这两类依赖缺席时服务会跳过对应的旁路逻辑。
func newTestPostService(t *testing.T, db *gorm.DB) PostService {
	t.Helper()
	return NewPostService(
		db,
		mysql.NewPostRepository(db),
		mysql.NewCommentRepository(db),
		nil,
		nil,
		nil,
		newTestNicknameGen(),
		newTestLogger(t),
	)
}

func TestPostService_CreatePost(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPostService(t, db)
	ctx := context.Background()

	detail, err := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Title:    "新手提问",
		Content:  "第一次发帖",
		Category: enums.CategoryQuestion,
		Nickname: "某某",
	})
	require.NoError(t, err)
	assert.NotZero(t, detail.ID)
	assert.Equal(t, "某某", detail.Nickname)

	// 新帖默认进入待审核状态
	var stored entities.Post
	require.NoError(t, db.First(&stored, detail.ID).Error)
	assert.Equal(t, sharedEnums.Pending, stored.Status)
}

func TestPostService_CreatePost_GeneratesNickname(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPostService(t, db)

	detail, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:    "匿名发帖",
		Content:  "没有填昵称",
		Category: enums.CategoryFree,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, detail.Nickname, "昵称留空时应由服务端合成")
}

func TestPostService_GetPostByID_VisibilityGate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPostService(t, db)
	ctx := context.Background()

	visible := createTestPost(t, db)

	hidden := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", hidden.ID).Update("is_hidden", true).Error)

	rejected := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", rejected.ID).Update("status", sharedEnums.Rejected).Error)

	// 可见帖子正常返回
	detail, err := svc.GetPostByID(ctx, visible.ID, "")
	require.NoError(t, err)
	assert.Equal(t, visible.ID, detail.ID)

	// 隐藏帖与拒绝帖对公开访问表现为不存在
	_, err = svc.GetPostByID(ctx, hidden.ID, "")
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	_, err = svc.GetPostByID(ctx, rejected.ID, "")
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	// 不存在的帖子
	_, err = svc.GetPostByID(ctx, 99999, "")
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestPostService_ReportPost(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPostService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	require.NoError(t, svc.ReportPost(ctx, post.ID))

	var stored entities.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.True(t, stored.IsReported)

	// 重复举报幂等
	require.NoError(t, svc.ReportPost(ctx, post.ID))

	require.ErrorIs(t, svc.ReportPost(ctx, 99999), commonerrors.ErrRepoNotFound)
}

func TestPostService_DeletePost_CascadesComments(t *testing.T) {
	db := newTestDB(t)
	postSvc := newTestPostService(t, db)
	commentSvc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	_, err := commentSvc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "评论者", Password: "s", Content: "会被级联删除",
	})
	require.NoError(t, err)

	require.NoError(t, postSvc.DeletePost(ctx, post.ID))

	// 帖子与评论都已不可见（软删除）
	var postCount int64
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", post.ID).Count(&postCount).Error)
	assert.Equal(t, int64(0), postCount)

	var commentCount int64
	require.NoError(t, db.Model(&entities.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
	assert.Equal(t, int64(0), commentCount)
}

func TestPostListService_ListPosts(t *testing.T) {
	db := newTestDB(t)
	listSvc := NewPostListService(mysql.NewPostRepository(db), newTestLogger(t))
	ctx := context.Background()

	normal := createTestPost(t, db)

	pinned := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", pinned.ID).Update("is_pinned", true).Error)

	hidden := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", hidden.ID).Update("is_hidden", true).Error)

	rejected := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", rejected.ID).Update("status", sharedEnums.Rejected).Error)

	page, err := listSvc.ListPosts(ctx, &dto.ListPostsRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)

	// 隐藏帖与拒绝帖不在公开列表中，置顶帖排在最前
	require.Equal(t, int64(2), page.Total)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, pinned.ID, page.Posts[0].ID)
	assert.Equal(t, normal.ID, page.Posts[1].ID)
}
