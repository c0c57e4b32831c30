package enums

// PostCategory 社区帖子分类
// - 社区板块是固定的几个栏目，使用整数枚举存储，便于索引和筛选
// - 0=公告, 1=提问, 2=经验分享, 3=自由, 4=资料, 5=其他
type PostCategory int

const (
	CategoryNotice     PostCategory = iota // 公告
	CategoryQuestion                       // 提问
	CategoryExperience                     // 经验分享
	CategoryFree                           // 自由
	CategoryInfo                           // 资料
	CategoryMisc                           // 其他
)

// IsValid 校验分类值是否在枚举范围内
func (c PostCategory) IsValid() bool {
	return c >= CategoryNotice && c <= CategoryMisc
}

// String 返回分类的可读名称，主要用于日志
func (c PostCategory) String() string {
	switch c {
	case CategoryNotice:
		return "notice"
	case CategoryQuestion:
		return "question"
	case CategoryExperience:
		return "experience"
	case CategoryFree:
		return "free"
	case CategoryInfo:
		return "info"
	case CategoryMisc:
		return "misc"
	default:
		return "unknown"
	}
}
