package config

// ViewSyncConfig 包含浏览量同步任务相关的配置
type ViewSyncConfig struct {
	// BatchSize 是将 Redis 中的浏览量同步到 MySQL 数据库时，每个数据库操作批次处理的帖子数量。
	// 例如从 Redis 获取到 20 万条帖子的浏览量需要同步，BatchSize 为 500 时，
	// 同步逻辑会将其分割为 400 个小批次，每个批次通过一条 UPDATE (CASE WHEN) 语句完成。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 是执行浏览量同步到 MySQL 任务时，并发处理数据批次的 worker (goroutine) 数量。
	// 该参数决定同时向数据库发起批量更新的并发连接数。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 是从 Redis 使用 SCAN 命令获取所有帖子浏览量 Key 时，
	// 传递给 SCAN 命令的 COUNT 参数的建议值。
	// Redis 不保证精确返回此数量，但会以此为提示。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
