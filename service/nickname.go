package service

import (
	"fmt"
	"math/rand"
	"sync"
)

// 随机昵称的词库。匿名发帖/评论时，未填写昵称的用户会得到
// "形容词+名词+数字" 形式的展示名，例如 "开朗的海豚233"。
var (
	nicknameAdjectives = []string{
		"开朗的", "害羞的", "勇敢的", "慵懒的", "机智的",
		"迷糊的", "安静的", "热情的", "神秘的", "傲娇的",
		"淡定的", "暴躁的", "温柔的", "倔强的", "快乐的",
	}
	nicknameNouns = []string{
		"海豚", "狐狸", "企鹅", "刺猬", "水獭",
		"柴犬", "熊猫", "鹦鹉", "仓鼠", "考拉",
		"猫头鹰", "小鹿", "海獭", "浣熊", "鲸鱼",
	}
)

// NicknameGenerator 生成匿名用户的随机展示昵称。
// - 随机源通过构造函数注入，测试时可以传入固定种子获得确定性输出。
// - rand.Rand 本身不是并发安全的，内部用互斥锁保护。
type NicknameGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewNicknameGenerator 创建 NicknameGenerator 实例。
func NewNicknameGenerator(rng *rand.Rand) *NicknameGenerator {
	return &NicknameGenerator{rng: rng}
}

// Generate 返回一个 "形容词+名词+数字后缀" 的随机昵称。
// 数字后缀为 1~4 位 (1 ~ 9999)。
func (g *NicknameGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	adjective := nicknameAdjectives[g.rng.Intn(len(nicknameAdjectives))]
	noun := nicknameNouns[g.rng.Intn(len(nicknameNouns))]
	suffix := g.rng.Intn(9999) + 1

	return fmt.Sprintf("%s%s%d", adjective, noun, suffix)
}

// OrDefault 在用户提供了昵称时原样返回，否则生成一个随机昵称。
func (g *NicknameGenerator) OrDefault(nickname string) string {
	if nickname != "" {
		return nickname
	}
	return g.Generate()
}
