package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

func newTestCommentService(t *testing.T, db *gorm.DB) CommentService {
	t.Helper()
	return NewCommentService(
		db,
		mysql.NewCommentRepository(db),
		mysql.NewPostRepository(db),
		newTestLogger(t),
	)
}

func TestCommentService_CreateComment_DepthLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	// 顶层评论 (深度 0)，随后沿链回复到最大深度
	var parentID *uint64
	for depth := 0; depth <= constant.MaxCommentDepth; depth++ {
		comment, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
			Nickname: "楼主",
			Password: "secret",
			Content:  "评论内容",
			ParentID: parentID,
		})
		require.NoError(t, err, "深度 %d 的评论应当创建成功", depth)
		id := comment.ID
		parentID = &id
	}

	// 再往下一层就超过上限了
	_, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "过深的回复",
		Password: "secret",
		Content:  "不应该被创建",
		ParentID: parentID,
	})
	require.ErrorIs(t, err, myErrors.ErrDepthExceeded)
	// 错误信息携带配置的深度上限，供调用方直接透传
	assert.Contains(t, err.Error(), strconv.Itoa(constant.MaxCommentDepth))

	// 评论计数只包含成功创建的那几条
	var refreshed entities.Post
	require.NoError(t, db.First(&refreshed, post.ID).Error)
	assert.Equal(t, int64(constant.MaxCommentDepth+1), refreshed.CommentCount)
}

func TestCommentService_CreateComment_ParentMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()

	postA := createTestPost(t, db)
	postB := createTestPost(t, db)

	parent, err := svc.CreateComment(ctx, postA.ID, &dto.CreateCommentRequest{
		Nickname: "A楼主",
		Password: "secret",
		Content:  "A帖的评论",
	})
	require.NoError(t, err)

	// 跨帖回复：父评论属于 postA，却试图挂在 postB 下
	_, err = svc.CreateComment(ctx, postB.ID, &dto.CreateCommentRequest{
		Nickname: "捣乱的",
		Password: "secret",
		Content:  "跨帖回复",
		ParentID: &parent.ID,
	})
	require.ErrorIs(t, err, myErrors.ErrParentMismatch)

	// 父评论不存在
	missingParent := uint64(99999)
	_, err = svc.CreateComment(ctx, postA.ID, &dto.CreateCommentRequest{
		Nickname: "捣乱的",
		Password: "secret",
		Content:  "回复幽灵评论",
		ParentID: &missingParent,
	})
	require.ErrorIs(t, err, myErrors.ErrParentMismatch)

	// 两次失败都不应污染评论计数
	var refreshed entities.Post
	require.NoError(t, db.First(&refreshed, postB.ID).Error)
	assert.Equal(t, int64(0), refreshed.CommentCount)
}

func TestCommentService_CreateComment_PostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)

	_, err := svc.CreateComment(context.Background(), 42, &dto.CreateCommentRequest{
		Nickname: "无主评论",
		Password: "secret",
		Content:  "帖子不存在",
	})
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestCommentService_UpdateComment_SecretGate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	created, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "原始昵称",
		Password: "correct-horse",
		Content:  "原始内容",
	})
	require.NoError(t, err)

	// 口令错误：拒绝且内容保持原样
	_, err = svc.UpdateComment(ctx, created.ID, &dto.UpdateCommentRequest{
		Nickname: "篡改昵称",
		Password: "wrong-horse",
		Content:  "篡改内容",
	})
	require.ErrorIs(t, err, myErrors.ErrSecretMismatch)

	var unchanged entities.Comment
	require.NoError(t, db.First(&unchanged, created.ID).Error)
	assert.Equal(t, "原始昵称", unchanged.Nickname)
	assert.Equal(t, "原始内容", unchanged.Content)

	// 口令正确：编辑生效
	updated, err := svc.UpdateComment(ctx, created.ID, &dto.UpdateCommentRequest{
		Nickname: "新昵称",
		Password: "correct-horse",
		Content:  "新内容",
	})
	require.NoError(t, err)
	assert.Equal(t, "新昵称", updated.Nickname)
	assert.Equal(t, "新内容", updated.Content)
}

func TestCommentService_DeleteComment_CascadesSubtree(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	top, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "楼主", Password: "top-secret", Content: "顶层评论",
	})
	require.NoError(t, err)

	reply, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "一楼", Password: "s1", Content: "一级回复", ParentID: &top.ID,
	})
	require.NoError(t, err)

	_, err = svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "二楼", Password: "s2", Content: "二级回复", ParentID: &reply.ID,
	})
	require.NoError(t, err)

	// 另一条不相关的顶层评论，删除子树时应保持不动
	other, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "路人", Password: "s3", Content: "无关评论",
	})
	require.NoError(t, err)

	// 口令错误：整棵子树保持不动
	err = svc.DeleteComment(ctx, top.ID, &dto.DeleteCommentRequest{Password: "wrong"})
	require.ErrorIs(t, err, myErrors.ErrSecretMismatch)

	var count int64
	require.NoError(t, db.Model(&entities.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(4), count)

	// 口令正确：删除顶层评论级联清掉整棵子树，评论计数同步扣减
	require.NoError(t, svc.DeleteComment(ctx, top.ID, &dto.DeleteCommentRequest{Password: "top-secret"}))

	require.NoError(t, db.Model(&entities.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "只应剩下无关的顶层评论")

	var survivor entities.Comment
	require.NoError(t, db.Where("post_id = ?", post.ID).First(&survivor).Error)
	assert.Equal(t, other.ID, survivor.ID)

	var refreshed entities.Post
	require.NoError(t, db.First(&refreshed, post.ID).Error)
	assert.Equal(t, int64(1), refreshed.CommentCount)
}

func TestCommentService_ListCommentsByPostID_FlatOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	first, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "一号", Password: "s", Content: "第一条",
	})
	require.NoError(t, err)
	assert.Equal(t, "一号", first.Nickname, "评论昵称原样存储")

	second, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "二号", Password: "s", Content: "第二条",
	})
	require.NoError(t, err)

	reply, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "回复者", Password: "s", Content: "给第一条的回复", ParentID: &first.ID,
	})
	require.NoError(t, err)

	// 返回的是扁平列表：顶层与回复混排，按创建顺序排列，树形结构由读取侧重建
	comments, err := svc.ListCommentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, reply.ID, comments[2].ID)

	// ParentID 足以重建嵌套关系
	assert.Nil(t, comments[0].ParentID)
	assert.Nil(t, comments[1].ParentID)
	require.NotNil(t, comments[2].ParentID)
	assert.Equal(t, first.ID, *comments[2].ParentID)
}

func TestCommentService_ListReplies(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCommentService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	top, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "楼主", Password: "s", Content: "顶层",
	})
	require.NoError(t, err)

	r1, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "甲", Password: "s", Content: "回复一", ParentID: &top.ID,
	})
	require.NoError(t, err)
	r2, err := svc.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{
		Nickname: "乙", Password: "s", Content: "回复二", ParentID: &top.ID,
	})
	require.NoError(t, err)

	replies, err := svc.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].ID)
	assert.Equal(t, r2.ID, replies[1].ID)

	// 不存在的评论
	_, err = svc.ListReplies(ctx, 99999)
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}
