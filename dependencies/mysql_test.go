package dependencies

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/community_service/models/entities"
)

// 点赞仓库靠 gorm.ErrDuplicatedKey 识别并发下的重复插入，
// 这要求连接层的 GORM 配置开启方言错误翻译，否则驱动返回的
// 原始唯一键冲突错误无法被 errors.Is 命中。
func TestNewGormConfig_TranslatesDuplicateKey(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), newGormConfig(gormlogger.Default.LogMode(gormlogger.Silent)))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.PostLike{}))

	require.NoError(t, db.Create(&entities.PostLike{PostID: 1, IdentityKey: "203.0.113.7"}).Error)

	err = db.Create(&entities.PostLike{PostID: 1, IdentityKey: "203.0.113.7"}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
