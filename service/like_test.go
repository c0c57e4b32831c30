package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

func newTestLikeService(t *testing.T, db *gorm.DB) LikeService {
	t.Helper()
	return NewLikeService(
		db,
		mysql.NewPostRepository(db),
		mysql.NewPostLikeRepository(db),
		newTestLogger(t),
	)
}

func TestLikeService_ToggleLike_OnOff(t *testing.T) {
	db := newTestDB(t)
	svc := newTestLikeService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	// 第一次：点赞
	result, err := svc.ToggleLike(ctx, post.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)

	// 第二次同一身份：取消点赞，计数回落
	result, err = svc.ToggleLike(ctx, post.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikeCount)

	// 第三次：重新点赞，唯一索引不应拦截曾经取消过的身份
	result, err = svc.ToggleLike(ctx, post.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
}

func TestLikeService_ToggleLike_DedupPerIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := newTestLikeService(t, db)
	ctx := context.Background()
	post := createTestPost(t, db)

	identities := []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"}
	for _, identity := range identities {
		result, err := svc.ToggleLike(ctx, post.ID, identity)
		require.NoError(t, err)
		assert.True(t, result.Liked)
	}

	// 三个身份各一条记录，计数与记录表一致
	var refreshed entities.Post
	require.NoError(t, db.First(&refreshed, post.ID).Error)
	assert.Equal(t, int64(3), refreshed.LikeCount)

	var rows int64
	require.NoError(t, db.Model(&entities.PostLike{}).Where("post_id = ?", post.ID).Count(&rows).Error)
	assert.Equal(t, int64(3), rows)

	// 其中一个取消，计数随之扣减
	result, err := svc.ToggleLike(ctx, post.ID, identities[0])
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(2), result.LikeCount)
}

func TestLikeService_ToggleLike_PostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestLikeService(t, db)

	_, err := svc.ToggleLike(context.Background(), 42, "203.0.113.9")
	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}
