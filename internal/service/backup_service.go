package service

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mautops/compose-gin/internal/model"
	"gorm.io/gorm"
)

// BackupService 备份服务
// 将 documents 与 audit_logs 表导出为 JSON 归档
type BackupService struct {
	db        *gorm.DB
	backupDir string
}

// BackupInfo 备份信息
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// backupArchive 备份归档内容
type backupArchive struct {
	CreatedAt time.Time              `json:"created_at"`
	Documents []*model.DocumentModel `json:"documents"`
	AuditLogs []*model.AuditLogModel `json:"audit_logs"`
}

// NewBackupService 创建备份服务
func NewBackupService(db *gorm.DB, backupDir string) *BackupService {
	// 确保备份目录存在
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		// 如果创建失败，使用临时目录
		backupDir = os.TempDir()
	}

	return &BackupService{
		db:        db,
		backupDir: backupDir,
	}
}

// CreateBackup 创建备份
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	// 1. 导出数据
	archive := &backupArchive{CreatedAt: time.Now()}

	if err := s.db.WithContext(ctx).Find(&archive.Documents).Error; err != nil {
		return "", fmt.Errorf("failed to export documents: %w", err)
	}
	if err := s.db.WithContext(ctx).Find(&archive.AuditLogs).Error; err != nil {
		return "", fmt.Errorf("failed to export audit logs: %w", err)
	}

	payload, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}

	// 2. 写入 tar.gz 归档
	timestamp := archive.CreatedAt.Format("20060102_150405")
	filename := fmt.Sprintf("backup_%s.tar.gz", timestamp)
	backupPath := filepath.Join(s.backupDir, filename)

	file, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	header := &tar.Header{
		Name:    "documents.json",
		Mode:    0644,
		Size:    int64(len(payload)),
		ModTime: archive.CreatedAt,
	}
	if err := tarWriter.WriteHeader(header); err != nil {
		return "", fmt.Errorf("failed to write tar header: %w", err)
	}
	if _, err := tarWriter.Write(payload); err != nil {
		return "", fmt.Errorf("failed to write backup payload: %w", err)
	}

	return backupPath, nil
}

// RestoreBackup 恢复备份
// 按主键覆盖写入,不删除备份之外的数据
func (s *BackupService) RestoreBackup(ctx context.Context, filename string) error {
	backupPath, err := s.resolvePath(filename)
	if err != nil {
		return err
	}

	// 检查备份文件是否存在
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", filename)
	}

	file, err := os.Open(backupPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)

	var payload []byte
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read tar: %w", err)
		}
		if filepath.Ext(header.Name) == ".json" {
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, tarReader); err != nil {
				return fmt.Errorf("failed to read backup payload: %w", err)
			}
			payload = buf.Bytes()
			break
		}
	}
	if payload == nil {
		return fmt.Errorf("no payload found in backup: %s", filename)
	}

	var archive backupArchive
	if err := json.Unmarshal(payload, &archive); err != nil {
		return fmt.Errorf("failed to unmarshal backup: %w", err)
	}

	// 在事务中恢复
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range archive.Documents {
			if err := tx.Save(doc).Error; err != nil {
				return fmt.Errorf("failed to restore document %s: %w", doc.ID, err)
			}
		}
		for _, log := range archive.AuditLogs {
			if err := tx.Save(log).Error; err != nil {
				return fmt.Errorf("failed to restore audit log %s: %w", log.ID, err)
			}
		}
		return nil
	})
}

// ListBackups 列出所有备份
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	var backups []BackupInfo

	// 读取备份目录
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// 检查是否是备份文件
		if !isBackupFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Filename:  entry.Name(),
			Path:      filepath.Join(s.backupDir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	return backups, nil
}

// BackupDir 获取备份目录
func (s *BackupService) BackupDir() string {
	return s.backupDir
}

// DeleteBackup 删除备份
func (s *BackupService) DeleteBackup(ctx context.Context, filename string) error {
	backupPath, err := s.resolvePath(filename)
	if err != nil {
		return err
	}

	// 删除文件
	if err := os.Remove(backupPath); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}

	return nil
}

// resolvePath 解析备份文件路径,拒绝目录穿越
func (s *BackupService) resolvePath(filename string) (string, error) {
	backupPath := filepath.Join(s.backupDir, filename)

	absBackupDir, err := filepath.Abs(s.backupDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute backup directory: %w", err)
	}

	absBackupPath, err := filepath.Abs(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute backup path: %w", err)
	}

	if !strings.HasPrefix(absBackupPath, absBackupDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid backup path: %s", filename)
	}

	return backupPath, nil
}

// isBackupFile 检查是否是备份文件
func isBackupFile(filename string) bool {
	return strings.HasPrefix(filename, "backup_") && strings.HasSuffix(filename, ".tar.gz")
}
