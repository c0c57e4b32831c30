package entities

import (
	sharedEntities "github.com/Xushengqwer/go-common/models/entities"
)

// Comment 帖子评论实体
//   - 使用场景: 帖子详情页的评论区，支持对评论进行回复（自引用树结构）
//   - 表名: comments (GORM 默认使用蛇形复数形式)
//   - 关系: 与 Post 表为多对一；ParentID 自引用 comments 表实现楼中楼。
//     树结构在读取时由扁平列表重建（见 vo.BuildCommentTree），写入时校验
//     嵌套深度不超过 constant.MaxCommentDepth
type Comment struct {
	sharedEntities.BaseModel // 嵌入自定义的 BaseModel, 包含 ID, CreatedAt, UpdatedAt, DeletedAt 字段

	// 所属帖子ID (外键，指向 posts 表的主键)
	// - GORM 标签: not null + index，评论区按帖子加载
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 父评论ID，自引用外键
	// - 为 NULL 表示顶层评论；非 NULL 表示对某条评论的回复
	// - 约束: 父评论必须属于同一个 PostID，跨帖回复在服务层拒绝
	ParentID *uint64 `gorm:"type:bigint;index"`

	// 展示昵称，创建时由用户填写，编辑时可修改
	Nickname string `gorm:"type:varchar(50);not null"`

	// 评论内容
	Content string `gorm:"type:text;not null"`

	// 编辑/删除口令
	// - 匿名社区没有账号，该口令是评论唯一的变更凭证：创建时设置，
	//   编辑和删除必须原样出示，服务端只做等值比较，从不返回该字段
	Secret string `gorm:"type:varchar(255);not null" json:"-"`
}
