package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mautops/compose-gin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDocument 直接写入一条文档记录
func seedDocument(t *testing.T, svc *BackupService, id string, version int, name string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, svc.db.Save(&model.DocumentModel{
		ID:        id,
		Version:   version,
		Name:      name,
		Data:      []byte(`{"id":"` + id + `"}`),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
}

// TestBackupService_CreateAndRestore 测试备份与恢复往返
func TestBackupService_CreateAndRestore(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackupService(db, t.TempDir())

	seedDocument(t, svc, "doc-1", 1, "Devis")
	seedDocument(t, svc, "doc-1", 2, "Devis v2")

	// 创建备份
	backupPath, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, backupPath)

	// 清空数据
	require.NoError(t, db.Exec("DELETE FROM documents").Error)

	// 恢复备份
	filename := filepath.Base(backupPath)
	require.NoError(t, svc.RestoreBackup(context.Background(), filename))

	var count int64
	require.NoError(t, db.Table("documents").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var restored model.DocumentModel
	require.NoError(t, db.Where("id = ? AND version = ?", "doc-1", 2).First(&restored).Error)
	assert.Equal(t, "Devis v2", restored.Name)
}

// TestBackupService_RestoreBackup_NotFound 测试恢复不存在的备份
func TestBackupService_RestoreBackup_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackupService(db, t.TempDir())

	err := svc.RestoreBackup(context.Background(), "backup_20260101_000000.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup file not found")
}

// TestBackupService_RestoreBackup_PathTraversal 测试目录穿越防护
func TestBackupService_RestoreBackup_PathTraversal(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackupService(db, t.TempDir())

	err := svc.RestoreBackup(context.Background(), "../../../etc/passwd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backup path")
}

// TestBackupService_ListAndDelete 测试备份列表与删除
func TestBackupService_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackupService(db, t.TempDir())

	backupPath, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, filepath.Base(backupPath), backups[0].Filename)

	require.NoError(t, svc.DeleteBackup(context.Background(), backups[0].Filename))

	backups, err = svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backups)
}

// TestIsBackupFile 测试备份文件名识别
func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("backup_20260101_000000.tar.gz"))
	assert.False(t, isBackupFile("notes.txt"))
	assert.False(t, isBackupFile("backup_partial.tar"))
	assert.False(t, isBackupFile("archive.tar.gz"))
}
