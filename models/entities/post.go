package entities

import (
	"database/sql"

	sharedEntities "github.com/Xushengqwer/go-common/models/entities"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Post 社区帖子实体
// - 使用场景: 匿名社区的帖子列表页与详情页，发帖无需账号，只携带展示昵称
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 注意: LikeCount / CommentCount 为冗余计数，必须与 post_likes / comments
//   表的真实行数在同一事务内保持一致，禁止独立地读旧值写新值
type Post struct {
	sharedEntities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null"`

	// 正文，支持多行文本
	// - 类型: text，保留换行符（\n），前端按换行渲染
	Content string `gorm:"type:text;not null"`

	// 帖子分类，枚举类型：0=公告, 1=提问, 2=经验分享, 3=自由, 4=资料, 5=其他
	// - GORM 标签: index 支持按板块筛选列表
	Category enums.PostCategory `gorm:"type:int;not null;index"`

	// 展示昵称
	// - 匿名社区没有账号体系，昵称仅用于展示，不承担任何鉴权职责
	// - 用户不填写时由服务端按固定词表随机合成（见 service.NicknameGenerator）
	Nickname string `gorm:"type:varchar(50);not null"`

	// 点赞数，冗余计数
	// - 唯一数据源是 post_likes 表，任何 ToggleLike 都在同一事务内
	//   将该字段重算为 post_likes 的行数
	LikeCount int64 `gorm:"type:bigint;default:0"`

	// 浏览量
	// - 实时计数在 Redis 中，由定时任务批量回写到该字段
	ViewCount int64 `gorm:"type:bigint;default:0"`

	// 评论数，冗余计数
	// - 与 comments 表的插入/删除在同一事务内增减
	CommentCount int64 `gorm:"type:bigint;default:0"`

	// 是否被举报
	// - 任何访客都可以举报帖子，置位后由管理后台处理
	IsReported bool `gorm:"default:false"`

	// 是否隐藏
	// - 隐藏的帖子不出现在公开列表和详情中，仅管理后台可见
	IsHidden bool `gorm:"default:false;index"`

	// 是否置顶
	// - 置顶帖在列表中排在最前
	IsPinned bool `gorm:"default:false;index"`

	// 状态，枚举类型：0=待审核, 1=已审核, 2=拒绝
	// - 审核结果由审核服务通过 Kafka 异步回写
	Status sharedEnums.Status `gorm:"type:int;default:0"`

	// 审核原因，记录帖子审核（特别是拒绝时）的原因
	AuditReason sql.NullString `gorm:"type:varchar(255);comment:审核原因"`
}
