package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mautops/compose-gin/internal/config"
	"github.com/mautops/compose-gin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig 连接池配置
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // 秒
	ConnMaxIdleTime int // 秒
}

// BuildDSN 构建 PostgreSQL DSN
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetPoolConfig 获取连接池配置
func GetPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 3600, // 1 小时
		ConnMaxIdleTime: 600,  // 10 分钟
	}
}

// GetProductionPoolConfig 获取生产环境连接池配置
func GetProductionPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    20,   // 生产环境增加空闲连接数
		MaxOpenConns:    200,  // 生产环境增加最大连接数
		ConnMaxLifetime: 3600, // 1 小时
		ConnMaxIdleTime: 300,  // 5 分钟（生产环境缩短空闲时间）
	}
}

// Connect 连接数据库
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	poolConfig := resolvePoolConfig(cfg, GetPoolConfig())

	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(poolConfig.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(poolConfig.ConnMaxIdleTime) * time.Second)

	return db, nil
}

// ConnectProduction 连接数据库（生产环境配置）
func ConnectProduction(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池（生产环境）
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	poolConfig := resolvePoolConfig(cfg, GetProductionPoolConfig())

	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(poolConfig.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(poolConfig.ConnMaxIdleTime) * time.Second)

	return db, nil
}

// resolvePoolConfig 从配置中读取连接池参数,未设置的项使用给定的默认值
func resolvePoolConfig(cfg config.DatabaseConfig, defaults *PoolConfig) *PoolConfig {
	if cfg.MaxIdleConns <= 0 && cfg.MaxOpenConns <= 0 {
		return defaults
	}

	poolConfig := &PoolConfig{
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxOpenConns:    cfg.MaxOpenConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
	if poolConfig.MaxIdleConns == 0 {
		poolConfig.MaxIdleConns = defaults.MaxIdleConns
	}
	if poolConfig.MaxOpenConns == 0 {
		poolConfig.MaxOpenConns = defaults.MaxOpenConns
	}
	if poolConfig.ConnMaxLifetime == 0 {
		poolConfig.ConnMaxLifetime = defaults.ConnMaxLifetime
	}
	if poolConfig.ConnMaxIdleTime == 0 {
		poolConfig.ConnMaxIdleTime = defaults.ConnMaxIdleTime
	}
	return poolConfig
}

// Migrate 执行数据库迁移
func Migrate(db *gorm.DB) error {
	// 检测数据库类型
	dialector := db.Dialector.Name()

	// SQLite 不支持 jsonb，需要手动创建表
	// GORM SQLite dialector 的名称可能是 "sqlite" 或 "sqlite3"
	if dialector == "sqlite" || dialector == "sqlite3" {
		// 手动创建 SQLite 表（使用 TEXT 替代 jsonb）
		if err := createSQLiteTables(db); err != nil {
			return fmt.Errorf("failed to create SQLite tables: %w", err)
		}
	} else {
		// PostgreSQL 等其他数据库使用 AutoMigrate
		if err := db.AutoMigrate(
			&model.DocumentModel{},
			&model.AuditLogModel{},
		); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	}

	// 创建索引
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createSQLiteTables 为 SQLite 手动创建表（使用 TEXT 替代 jsonb）
func createSQLiteTables(db *gorm.DB) error {
	// 创建 documents 表 (使用组合主键 id, version)
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id VARCHAR(64) NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			data TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			created_by VARCHAR(64),
			updated_by VARCHAR(64),
			PRIMARY KEY (id, version)
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	// 创建 audit_logs 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_logs (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			action VARCHAR(64) NOT NULL,
			resource_type VARCHAR(32) NOT NULL,
			resource_id VARCHAR(64) NOT NULL,
			request_id VARCHAR(64),
			ip VARCHAR(45),
			user_agent TEXT,
			details TEXT,
			created_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create audit_logs table: %w", err)
	}

	return nil
}

// CreateIndexes 创建数据库索引
func CreateIndexes(db *gorm.DB) error {
	// 检测数据库类型
	dialector := db.Dialector.Name()

	// documents 表索引
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_name ON documents(name)").Error; err != nil {
		return fmt.Errorf("failed to create idx_documents_name: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create idx_documents_created_at: %w", err)
	}
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_id_version ON documents(id, version)").Error; err != nil {
		return fmt.Errorf("failed to create idx_documents_id_version: %w", err)
	}

	// audit_logs 表索引
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_resource ON audit_logs(resource_type, resource_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_audit_resource: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_user_id ON audit_logs(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_audit_user_id: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_created_at ON audit_logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create idx_audit_created_at: %w", err)
	}

	// PostgreSQL 特定的 GIN 索引
	if dialector == "postgres" {
		// JSONB 字段的 GIN 索引
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_data_gin ON documents USING GIN (data)").Error; err != nil {
			return fmt.Errorf("failed to create idx_documents_data_gin: %w", err)
		}
	}

	return nil
}

// ConnectWithRetry 带重试的数据库连接
func ConnectWithRetry(cfg config.DatabaseConfig, maxRetries int, retryInterval time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = Connect(cfg)
		if err == nil {
			return db, nil
		}

		// 如果不是最后一次重试，等待后重试
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2 // 指数退避
		}
	}

	return nil, fmt.Errorf("failed to connect database after %d retries: %w", maxRetries, err)
}

// CheckHealth 检查数据库连接健康状态
func CheckHealth(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return false
	}

	return true
}

// Reconnect 重新连接数据库
func Reconnect(cfg config.DatabaseConfig, oldDB *gorm.DB) (*gorm.DB, error) {
	// 关闭旧连接
	if oldDB != nil {
		if sqlDB, err := oldDB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	// 重新连接
	return Connect(cfg)
}
