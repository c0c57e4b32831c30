package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommentResponse 定义了单条评论的响应数据结构。
// 注意: 口令 (Secret) 永远不会出现在任何视图对象中。
type CommentResponse struct {
	ID        uint64    `json:"id"`         // 评论ID
	PostID    uint64    `json:"post_id"`    // 所属帖子ID
	ParentID  *uint64   `json:"parent_id"`  // 父评论ID，null 表示顶层评论
	Nickname  string    `json:"nickname"`   // 展示昵称
	Content   string    `json:"content"`    // 评论内容
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// CommentTreeVO 是评论树的一个节点：一条评论及其直接子回复。
// 树由扁平列表在读取侧重建（见 BuildCommentTree），深度与写入侧校验
// 使用同一个上限。
type CommentTreeVO struct {
	CommentResponse
	Replies []*CommentTreeVO `json:"replies"` // 直接子回复，按创建顺序排列
}

// NewCommentResponseFromEntity 将评论实体转换为视图对象。
func NewCommentResponseFromEntity(entity *entities.Comment) *CommentResponse {
	if entity == nil {
		return nil
	}
	return &CommentResponse{
		ID:        entity.ID,
		PostID:    entity.PostID,
		ParentID:  entity.ParentID,
		Nickname:  entity.Nickname,
		Content:   entity.Content,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

// NewCommentResponsesFromEntities 将评论实体切片转换为视图对象切片。
func NewCommentResponsesFromEntities(comments []*entities.Comment) []*CommentResponse {
	if len(comments) == 0 {
		return []*CommentResponse{} // 返回空切片而不是 nil，JSON 序列化为 [] 而不是 null
	}
	responses := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		if comment != nil {
			responses = append(responses, NewCommentResponseFromEntity(comment))
		}
	}
	return responses
}

// BuildCommentTree 从按创建时间升序的扁平评论列表重建嵌套树。
//   - 消费侧算法: 按 ParentID 分组，从顶层评论出发递归挂接直接子回复，
//     重建深度与写入侧的嵌套上限一致（maxDepth），超出部分不再下钻，
//     防御数据库中出现异常深（或成环）的脏数据。
//   - 输入列表有序时，输出的每一层也保持创建顺序。
func BuildCommentTree(comments []*entities.Comment, maxDepth int) []*CommentTreeVO {
	childrenByParent := make(map[uint64][]*entities.Comment)
	roots := make([]*entities.Comment, 0)
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		if comment.ParentID == nil {
			roots = append(roots, comment)
		} else {
			childrenByParent[*comment.ParentID] = append(childrenByParent[*comment.ParentID], comment)
		}
	}

	var attach func(comment *entities.Comment, depth int) *CommentTreeVO
	attach = func(comment *entities.Comment, depth int) *CommentTreeVO {
		node := &CommentTreeVO{
			CommentResponse: *NewCommentResponseFromEntity(comment),
			Replies:         make([]*CommentTreeVO, 0),
		}
		if depth >= maxDepth {
			return node // 达到深度上限，不再下钻
		}
		for _, child := range childrenByParent[comment.ID] {
			node.Replies = append(node.Replies, attach(child, depth+1))
		}
		return node
	}

	tree := make([]*CommentTreeVO, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, attach(root, 0))
	}
	return tree
}
