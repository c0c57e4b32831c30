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
	"github.com/Xushengqwer/community_service/repo/mysql"
)

func newTestAdminService(t *testing.T, db *gorm.DB) PostAdminService {
	t.Helper()
	return NewPostAdminService(mysql.NewPostAdminRepository(db), newTestLogger(t))
}

func TestPostAdminService_AuditPost_Approve(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAdminService(t, db)
	post := createTestPost(t, db)

	require.NoError(t, svc.AuditPost(context.Background(), &dto.AuditPostRequest{
		PostID: post.ID,
		Status: sharedEnums.Approved,
	}))

	var stored entities.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, sharedEnums.Approved, stored.Status)
	assert.False(t, stored.IsHidden)
}

func TestPostAdminService_AuditPost_RejectHides(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAdminService(t, db)
	post := createTestPost(t, db)

	require.NoError(t, svc.AuditPost(context.Background(), &dto.AuditPostRequest{
		PostID: post.ID,
		Status: sharedEnums.Rejected,
		Reason: "含有违规内容",
	}))

	// 拒绝的帖子同时被隐藏，审核原因被记录
	var stored entities.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, sharedEnums.Rejected, stored.Status)
	assert.True(t, stored.IsHidden)
	require.True(t, stored.AuditReason.Valid)
	assert.Equal(t, "含有违规内容", stored.AuditReason.String)
}

func TestPostAdminService_PinAndHide(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAdminService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	require.NoError(t, svc.PinPost(ctx, &dto.PinPostRequest{PostID: post.ID, Pinned: true}))
	require.NoError(t, svc.HidePost(ctx, &dto.HidePostRequest{PostID: post.ID, Hidden: true}))

	var stored entities.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.True(t, stored.IsPinned)
	assert.True(t, stored.IsHidden)

	// 取消置顶 / 恢复展示
	require.NoError(t, svc.PinPost(ctx, &dto.PinPostRequest{PostID: post.ID, Pinned: false}))
	require.NoError(t, svc.HidePost(ctx, &dto.HidePostRequest{PostID: post.ID, Hidden: false}))

	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.False(t, stored.IsPinned)
	assert.False(t, stored.IsHidden)

	// 不存在的帖子
	require.ErrorIs(t, svc.PinPost(ctx, &dto.PinPostRequest{PostID: 99999, Pinned: true}), commonerrors.ErrRepoNotFound)
}

func TestPostAdminService_ListPostsByCondition(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAdminService(t, db)
	ctx := context.Background()

	plain := createTestPost(t, db)

	reported := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", reported.ID).Update("is_reported", true).Error)

	hidden := createTestPost(t, db)
	require.NoError(t, db.Model(&entities.Post{}).Where("id = ?", hidden.ID).Update("is_hidden", true).Error)

	// 管理视图不过滤隐藏帖
	all, err := svc.ListPostsByCondition(ctx, &dto.ListPostsByConditionRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)

	// 只看被举报的
	isReported := true
	reportedOnly, err := svc.ListPostsByCondition(ctx, &dto.ListPostsByConditionRequest{
		IsReported: &isReported,
		Page:       1,
		PageSize:   10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), reportedOnly.Total)
	assert.Equal(t, reported.ID, reportedOnly.Posts[0].ID)
	assert.True(t, reportedOnly.Posts[0].IsReported)

	// 按主键查询
	id := plain.ID
	byID, err := svc.ListPostsByCondition(ctx, &dto.ListPostsByConditionRequest{
		ID:       &id,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), byID.Total)
	assert.Equal(t, plain.ID, byID.Posts[0].ID)
}
