package service

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	sharedEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// newTestLogger 返回一个用于测试的 logger。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err, "初始化测试 logger 失败")
	return logger
}

// newTestDB 创建一个进程内 SQLite 数据库并完成表迁移。
// 每个测试使用独立的命名内存库，互不干扰。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// 将底层驱动的唯一约束错误翻译为 gorm.ErrDuplicatedKey，
		// 点赞仓库依赖该错误归一并发竞态
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "打开测试数据库失败")

	require.NoError(t, db.AutoMigrate(
		&entities.Post{},
		&entities.Comment{},
		&entities.PostLike{},
	), "迁移测试表失败")

	return db
}

// newTestNicknameGen 返回固定种子的昵称生成器，保证测试输出可复现。
func newTestNicknameGen() *NicknameGenerator {
	return NewNicknameGenerator(rand.New(rand.NewSource(1)))
}

// createTestPost 直接向库中写入一篇已审核通过的帖子并返回。
func createTestPost(t *testing.T, db *gorm.DB) *entities.Post {
	t.Helper()

	post := &entities.Post{
		Title:    "测试帖子",
		Content:  "测试正文",
		Category: enums.CategoryFree,
		Nickname: "测试用户",
		Status:   sharedEnums.Approved,
	}
	require.NoError(t, db.Create(post).Error, "创建测试帖子失败")
	return post
}
