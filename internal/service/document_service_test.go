package service

import (
	"context"
	"testing"
	"time"

	"github.com/mautops/compose-gin/internal/database"
	"github.com/mautops/compose-gin/internal/document"
	"github.com/mautops/compose-gin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存 SQLite 数据库并执行迁移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestDocumentService 创建文档服务
func newTestDocumentService(t *testing.T) (DocumentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewDocumentRepository(db)
	auditSvc := NewAuditLogService(repository.NewAuditLogRepository(db))
	svc := NewDocumentService(repo, db, nil, auditSvc, time.Minute)
	return svc, db
}

// TestDocumentService_Create 测试创建文档
func TestDocumentService_Create(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	doc, err := svc.Create(context.Background(), &CreateDocumentRequest{
		Name:        "Devis fenêtres",
		Description: "Devis pour M. Dupont",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Contains(t, doc.ID, "doc-")
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "Devis fenêtres", doc.Name)

	// 未提供配置时创建单页空文档
	require.NotNil(t, doc.Config)
	require.Len(t, doc.Config.Pages, 1)
	assert.Empty(t, doc.Config.Pages[0].Modules)
}

// TestDocumentService_Create_FromTemplate 测试从内置模板创建文档
func TestDocumentService_Create_FromTemplate(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	doc, err := svc.Create(context.Background(), &CreateDocumentRequest{
		Name:       "Devis classique",
		TemplateID: "quote-classic",
	})
	require.NoError(t, err)

	require.NotNil(t, doc.Config)
	require.Len(t, doc.Config.Pages, 1)
	assert.NotEmpty(t, doc.Config.Pages[0].Modules)
}

// TestDocumentService_Create_TemplateNotFound 测试未知模板
func TestDocumentService_Create_TemplateNotFound(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Create(context.Background(), &CreateDocumentRequest{
		Name:       "Devis",
		TemplateID: "missing-template",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}

// TestDocumentService_Get 测试获取文档与缓存
func TestDocumentService_Get(t *testing.T) {
	svc, db := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis"})
	require.NoError(t, err)

	got, err := svc.Get(created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Devis", got.Name)

	// 直接从数据库删除记录后,缓存命中仍返回文档
	require.NoError(t, db.Exec("DELETE FROM documents WHERE id = ?", created.ID).Error)
	cached, err := svc.Get(created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, created.ID, cached.ID)
}

// TestDocumentService_Get_NotFound 测试获取不存在的文档
func TestDocumentService_Get_NotFound(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Get("missing", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}

// TestDocumentService_Update 测试更新产生新版本
func TestDocumentService_Update(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{
		Name: "Devis v2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "Devis v2", updated.Name)

	// 旧版本仍可访问
	v1, err := svc.Get(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Devis", v1.Name)

	versions, err := svc.ListVersions(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, versions)
}

// TestDocumentService_Update_KeepsDescription 测试未提供描述时保留当前值
// 仅改名不得清空描述
func TestDocumentService_Update_KeepsDescription(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{
		Name:        "Devis",
		Description: "Devis pour M. Dupont",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{
		Name: "Devis v2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "Devis pour M. Dupont", updated.Description)

	// 仅提供描述同样保留名称
	updated, err = svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{
		Description: "Devis révisé",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Version)
	assert.Equal(t, "Devis v2", updated.Name)
	assert.Equal(t, "Devis révisé", updated.Description)
}

// TestDocumentService_Update_Idempotent 测试内容未变化时不产生新版本
func TestDocumentService_Update_Idempotent(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis"})
	require.NoError(t, err)

	same, err := svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{
		Name: "Devis",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, same.Version)

	versions, err := svc.ListVersions(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, versions)
}

// TestDocumentService_Update_NotFound 测试更新不存在的文档
func TestDocumentService_Update_NotFound(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Update(context.Background(), "missing", &UpdateDocumentRequest{Name: "Devis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}

// TestDocumentService_Delete 测试删除文档所有版本
func TestDocumentService_Delete(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{Name: "Devis v2"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(created.ID, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}

// TestDocumentService_List 测试文档列表查询
func TestDocumentService_List(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis fenêtres"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &CreateDocumentRequest{Name: "Facture toiture"})
	require.NoError(t, err)

	// 默认分页
	resp, err := svc.List(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Len(t, resp.Data, 2)

	// 搜索过滤
	resp, err = svc.List(&DocumentListFilter{Search: "Facture"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Facture toiture", resp.Data[0].Name)

	// 分页
	resp, err = svc.List(&DocumentListFilter{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Pagination.TotalPage)
}

// TestDocumentService_List_InvalidSort 测试非法排序字段
func TestDocumentService_List_InvalidSort(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.List(&DocumentListFilter{SortBy: "name; DROP TABLE documents"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort field")
}

// TestDocumentService_UpdateConfig 测试配置更新
func TestDocumentService_UpdateConfig(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	created, err := svc.Create(context.Background(), &CreateDocumentRequest{Name: "Devis"})
	require.NoError(t, err)

	cfg := document.NewTemplateConfig()
	cfg.AddPage("Page 2")

	updated, err := svc.Update(context.Background(), created.ID, &UpdateDocumentRequest{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Len(t, updated.Config.Pages, 2)
}
