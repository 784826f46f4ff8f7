package service

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// BackupScheduler 备份调度器
// 按固定间隔创建备份,并保留最近的 N 份
type BackupScheduler struct {
	backupService *BackupService
	logger        *logrus.Logger
	interval      time.Duration
	keep          int
	stopChan      chan struct{}
}

// NewBackupScheduler 创建备份调度器
func NewBackupScheduler(backupService *BackupService, logger *logrus.Logger, interval time.Duration, keep int) *BackupScheduler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if keep <= 0 {
		keep = 7
	}
	return &BackupScheduler{
		backupService: backupService,
		logger:        logger,
		interval:      interval,
		keep:          keep,
		stopChan:      make(chan struct{}),
	}
}

// Start 启动备份调度器
// interval 为 0 时不启动
func (s *BackupScheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	go s.run(ctx)
}

// Stop 停止备份调度器
func (s *BackupScheduler) Stop() {
	close(s.stopChan)
}

// run 周期执行备份与清理
func (s *BackupScheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.performBackup(ctx)
			s.CleanupOldBackups(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// performBackup 执行备份
func (s *BackupScheduler) performBackup(ctx context.Context) {
	backupPath, err := s.backupService.CreateBackup(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to create scheduled backup")
		return
	}
	s.logger.WithField("path", backupPath).Info("scheduled backup created")
}

// CleanupOldBackups 清理旧备份,只保留最近的 keep 份
func (s *BackupScheduler) CleanupOldBackups(ctx context.Context) {
	backups, err := s.backupService.ListBackups(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list backups")
		return
	}

	if len(backups) <= s.keep {
		return
	}

	// 按创建时间降序,删除超出保留数量的旧备份
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	for _, backup := range backups[s.keep:] {
		if err := s.backupService.DeleteBackup(ctx, backup.Filename); err != nil {
			s.logger.WithError(err).WithField("filename", backup.Filename).Error("failed to delete old backup")
		} else {
			s.logger.WithField("filename", backup.Filename).Info("deleted old backup")
		}
	}
}
