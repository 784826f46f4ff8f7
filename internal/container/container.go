package container

import (
	"fmt"
	"time"

	"github.com/mautops/compose-gin/internal/catalog"
	"github.com/mautops/compose-gin/internal/config"
	"github.com/mautops/compose-gin/internal/database"
	"github.com/mautops/compose-gin/internal/repository"
	"github.com/mautops/compose-gin/internal/service"
	"github.com/mautops/compose-gin/internal/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理所有应用依赖,包括数据库、服务、WebSocket Hub 等
type Container struct {
	db                *gorm.DB
	catalog           *catalog.Registry
	documentService   service.DocumentService
	renderService     service.RenderService
	auditLogService   service.AuditLogService
	statisticsService service.StatisticsService
	backupService     *service.BackupService
	backupScheduler   *service.BackupScheduler
	hub               *websocket.Hub
}

// NewContainer 创建依赖注入容器
// 根据配置初始化所有依赖组件
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. 初始化数据库（带重试机制）
	// 默认重试 3 次，初始间隔 1 秒，指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 2. 初始化模块目录（内置模块注册表）
	registry := catalog.Builtin()

	// 3. 初始化审计日志服务
	auditLogRepo := repository.NewAuditLogRepository(db)
	auditLogService := service.NewAuditLogService(auditLogRepo)

	// 4. 初始化文档服务
	documentRepo := repository.NewDocumentRepository(db)
	cacheTTL := time.Duration(cfg.Render.CacheTTL) * time.Second
	documentService := service.NewDocumentService(documentRepo, db, registry, auditLogService, cacheTTL)

	// 5. 初始化渲染服务
	renderService := service.NewRenderService(documentService, registry, auditLogService)

	// 6. 初始化统计服务
	statisticsService := service.NewStatisticsService(db)

	// 7. 初始化备份服务与调度器
	backupService := service.NewBackupService(db, cfg.Backup.Dir)
	backupInterval := time.Duration(cfg.Backup.Interval) * time.Second
	backupScheduler := service.NewBackupScheduler(backupService, logrus.StandardLogger(), backupInterval, cfg.Backup.Keep)

	// 8. 初始化 WebSocket Hub
	hub := websocket.NewHub()

	return &Container{
		db:                db,
		catalog:           registry,
		documentService:   documentService,
		renderService:     renderService,
		auditLogService:   auditLogService,
		statisticsService: statisticsService,
		backupService:     backupService,
		backupScheduler:   backupScheduler,
		hub:               hub,
	}, nil
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Catalog 获取模块目录
func (c *Container) Catalog() *catalog.Registry {
	return c.catalog
}

// DocumentService 获取文档服务
func (c *Container) DocumentService() service.DocumentService {
	return c.documentService
}

// RenderService 获取渲染服务
func (c *Container) RenderService() service.RenderService {
	return c.renderService
}

// AuditLogService 获取审计日志服务
func (c *Container) AuditLogService() service.AuditLogService {
	return c.auditLogService
}

// StatisticsService 获取统计服务
func (c *Container) StatisticsService() service.StatisticsService {
	return c.statisticsService
}

// BackupService 获取备份服务
func (c *Container) BackupService() *service.BackupService {
	return c.backupService
}

// BackupScheduler 获取备份调度器
func (c *Container) BackupScheduler() *service.BackupScheduler {
	return c.backupScheduler
}

// Hub 获取 WebSocket Hub
func (c *Container) Hub() *websocket.Hub {
	return c.hub
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.backupScheduler != nil {
		c.backupScheduler.Stop()
	}

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return nil
}
