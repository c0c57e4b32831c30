package vo

import (
	"testing"

	sharedEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/entities"
)

func makeComment(id uint64, parentID *uint64) *entities.Comment {
	return &entities.Comment{
		BaseModel: sharedEntities.BaseModel{ID: id},
		PostID:    1,
		ParentID:  parentID,
		Nickname:  "测试",
		Content:   "内容",
	}
}

func TestBuildCommentTree(t *testing.T) {
	id1, id2 := uint64(1), uint64(2)
	comments := []*entities.Comment{
		makeComment(1, nil),
		makeComment(2, &id1),
		makeComment(3, &id2),
		makeComment(4, nil),
	}

	tree := BuildCommentTree(comments, 3)
	require.Len(t, tree, 2)

	// 顶层保持输入顺序，回复逐层嵌套
	assert.Equal(t, uint64(1), tree[0].ID)
	assert.Equal(t, uint64(4), tree[1].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, uint64(2), tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, uint64(3), tree[0].Replies[0].Replies[0].ID)
}

func TestBuildCommentTree_DepthBound(t *testing.T) {
	// 构造超过上限的深链，脏数据不应让树无限展开
	var comments []*entities.Comment
	comments = append(comments, makeComment(1, nil))
	for i := uint64(2); i <= 6; i++ {
		parent := i - 1
		comments = append(comments, makeComment(i, &parent))
	}

	tree := BuildCommentTree(comments, 3)
	require.Len(t, tree, 1)

	depth := 0
	node := tree[0]
	for len(node.Replies) > 0 {
		node = node.Replies[0]
		depth++
	}
	assert.LessOrEqual(t, depth, 3)
}

func TestBuildCommentTree_Empty(t *testing.T) {
	assert.Empty(t, BuildCommentTree(nil, 3))
}
