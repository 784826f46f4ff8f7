package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mautops/compose-gin/internal/catalog"
	"github.com/mautops/compose-gin/internal/document"
	"github.com/mautops/compose-gin/internal/model"
	"github.com/mautops/compose-gin/internal/repository"
	"github.com/mautops/compose-gin/internal/utils"
	"gorm.io/gorm"
)

// DocumentService 文档服务接口
type DocumentService interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*document.Document, error)
	Get(id string, version int) (*document.Document, error)
	Update(ctx context.Context, id string, req *UpdateDocumentRequest) (*document.Document, error)
	Delete(ctx context.Context, id string) error
	List(filter *DocumentListFilter) (*DocumentListResponse, error)
	ListVersions(id string) ([]int, error)
}

// CreateDocumentRequest 创建文档请求
// @Description 创建文档的请求参数
type CreateDocumentRequest struct {
	Name        string                   `json:"name" example:"Devis fenêtres" binding:"required"` // 文档名称
	Description string                   `json:"description" example:"Devis pour M. Dupont"`       // 文档描述
	Config      *document.TemplateConfig `json:"config"`                                           // 页面与模块配置,为空时创建单页空文档
	TemplateID  string                   `json:"templateId" example:"quote-classic"`               // 内置模板 ID,设置后从模板实例化
}

// UpdateDocumentRequest 更新文档请求
// @Description 更新文档的请求参数
type UpdateDocumentRequest struct {
	Name        string                   `json:"name" example:"Devis fenêtres"` // 文档名称
	Description string                   `json:"description"`                   // 文档描述
	Config      *document.TemplateConfig `json:"config"`                        // 页面与模块配置
}

// DocumentListFilter 文档列表查询过滤器
type DocumentListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	SortBy   string `form:"sort_by"`
	Order    string `form:"order"` // asc/desc
}

// DocumentListResponse 文档列表响应
type DocumentListResponse struct {
	Data       []*document.Document
	Pagination PaginationInfo
}

// PaginationInfo 分页信息
type PaginationInfo struct {
	Page      int
	PageSize  int
	Total     int64
	TotalPage int
}

// documentCacheEntry 文档缓存条目
type documentCacheEntry struct {
	document  *document.Document
	expiresAt time.Time
}

// documentService 文档服务实现
type documentService struct {
	repo        repository.DocumentRepository
	db          *gorm.DB
	catalog     *catalog.Registry
	auditLogSvc AuditLogService
	cache       *sync.Map
	cacheTTL    time.Duration
}

// NewDocumentService 创建文档服务
func NewDocumentService(repo repository.DocumentRepository, db *gorm.DB, reg *catalog.Registry, auditLogSvc AuditLogService, cacheTTL time.Duration) DocumentService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if reg == nil {
		reg = catalog.Builtin()
	}
	return &documentService{
		repo:        repo,
		db:          db,
		catalog:     reg,
		auditLogSvc: auditLogSvc,
		cache:       &sync.Map{},
		cacheTTL:    cacheTTL,
	}
}

// generateDocumentID 生成文档 ID
func generateDocumentID() string {
	return fmt.Sprintf("doc-%s", uuid.New().String())
}

// Create 创建文档
func (s *documentService) Create(ctx context.Context, req *CreateDocumentRequest) (*document.Document, error) {
	// 1. 构建文档对象
	cfg := req.Config
	if cfg == nil {
		cfg = document.NewTemplateConfig()
		// 指定了内置模板时,从模板实例化第一页的模块
		if req.TemplateID != "" {
			tpl, ok := document.FindBuiltinTemplate(req.TemplateID)
			if !ok {
				return nil, fmt.Errorf("template not found: %s", req.TemplateID)
			}
			cfg.Pages[0].ApplyTemplate(tpl, s.catalog)
		}
	}
	now := time.Now()
	doc := &document.Document{
		ID:          generateDocumentID(),
		Name:        req.Name,
		Description: req.Description,
		Version:     1,
		Config:      cfg,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. 持久化
	if err := s.save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	// 3. 记录审计日志
	s.audit(ctx, "create", doc.ID, fmt.Sprintf(`{"document_id":"%s","name":"%s"}`, doc.ID, doc.Name))

	return doc, nil
}

// Get 获取文档（带缓存）
func (s *documentService) Get(id string, version int) (*document.Document, error) {
	// 生成缓存 key
	cacheKey := fmt.Sprintf("%s:%d", id, version)

	// 从缓存获取
	if val, found := s.cache.Load(cacheKey); found {
		entry := val.(*documentCacheEntry)
		if time.Now().Before(entry.expiresAt) {
			// 缓存未过期，直接返回
			return entry.document, nil
		}
		// 缓存已过期，删除
		s.cache.Delete(cacheKey)
	}

	// 缓存未命中或已过期，从数据库查询
	dm, err := s.repo.FindByID(id, version)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, err
	}

	var doc document.Document
	if err := json.Unmarshal(dm.Data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", id, err)
	}

	// 写入缓存
	entry := &documentCacheEntry{
		document:  &doc,
		expiresAt: time.Now().Add(s.cacheTTL),
	}
	s.cache.Store(cacheKey, entry)

	return &doc, nil
}

// Update 更新文档（创建新版本）
// 内容与当前版本完全相同时不产生新版本,直接返回当前版本
func (s *documentService) Update(ctx context.Context, id string, req *UpdateDocumentRequest) (*document.Document, error) {
	// 1. 获取当前最新版本
	currentModel, err := s.repo.FindByID(id, 0)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get current document: %w", err)
	}

	var current document.Document
	if err := json.Unmarshal(currentModel.Data, &current); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", id, err)
	}

	// 2. 构建更新后的文档对象
	updated := &document.Document{
		ID:          current.ID,
		Name:        req.Name,
		Description: req.Description,
		Version:     current.Version + 1,
		Config:      req.Config,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if updated.Name == "" {
		updated.Name = current.Name
	}
	if updated.Description == "" {
		updated.Description = current.Description
	}
	if updated.Config == nil {
		updated.Config = current.Config
	}

	// 3. 内容未变化时幂等返回当前版本,不递增版本号
	if updated.Name == current.Name &&
		updated.Description == current.Description &&
		configEqual(updated.Config, current.Config) {
		return &current, nil
	}

	// 4. 保存新版本
	if err := s.save(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	// 5. 清除缓存（更新后版本号变化，需要清除旧版本缓存）
	s.clearDocumentCache(id)

	// 6. 记录审计日志
	s.audit(ctx, "update", id, fmt.Sprintf(`{"document_id":"%s","name":"%s","version":%d}`, updated.ID, updated.Name, updated.Version))

	return updated, nil
}

// Delete 删除文档
func (s *documentService) Delete(ctx context.Context, id string) error {
	// 1. 获取文档信息（用于审计日志）
	doc, _ := s.Get(id, 0)

	// 2. 清除缓存
	s.clearDocumentCache(id)

	// 3. 删除所有版本
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	// 4. 记录审计日志
	name := ""
	if doc != nil {
		name = doc.Name
	}
	s.audit(ctx, "delete", id, fmt.Sprintf(`{"document_id":"%s","name":"%s"}`, id, name))

	return nil
}

// List 查询文档列表
func (s *documentService) List(filter *DocumentListFilter) (*DocumentListResponse, error) {
	if filter == nil {
		filter = &DocumentListFilter{}
	}

	// 设置默认值
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.Order == "" {
		filter.Order = "desc"
	}

	// 构建查询
	query := s.db.Model(&model.DocumentModel{})

	// 搜索条件
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", searchPattern, searchPattern)
	}

	// 获取总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	// 排序（验证并清理排序字段，防止 SQL 注入）
	if err := utils.ValidateSortField(filter.SortBy); err != nil {
		return nil, fmt.Errorf("invalid sort field: %w", err)
	}
	if err := utils.ValidateSortOrder(filter.Order); err != nil {
		return nil, fmt.Errorf("invalid sort order: %w", err)
	}
	query = query.Order(fmt.Sprintf("%s %s", filter.SortBy, strings.ToUpper(filter.Order)))

	// 分页
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Offset(offset).Limit(filter.PageSize)

	// 查询数据
	var models []model.DocumentModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	// 转换为 Document 对象（直接反序列化，避免 N+1 查询）
	documents := make([]*document.Document, 0, len(models))
	for _, m := range models {
		var doc document.Document
		if err := json.Unmarshal(m.Data, &doc); err != nil {
			continue // 跳过无法反序列化的文档
		}
		documents = append(documents, &doc)
	}

	// 计算总页数
	totalPage := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPage++
	}

	return &DocumentListResponse{
		Data: documents,
		Pagination: PaginationInfo{
			Page:      filter.Page,
			PageSize:  filter.PageSize,
			Total:     total,
			TotalPage: totalPage,
		},
	}, nil
}

// ListVersions 列出文档版本
func (s *documentService) ListVersions(id string) ([]int, error) {
	return s.repo.ListVersions(id)
}

// save 序列化并保存文档
func (s *documentService) save(ctx context.Context, doc *document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dm := &model.DocumentModel{
		ID:          doc.ID,
		Version:     doc.Version,
		Name:        doc.Name,
		Description: doc.Description,
		Data:        data,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		CreatedBy:   getUserIDFromContext(ctx),
		UpdatedBy:   getUserIDFromContext(ctx),
	}
	if err := dm.Validate(); err != nil {
		return err
	}

	return s.repo.Save(dm)
}

// audit 记录审计日志
func (s *documentService) audit(ctx context.Context, action, resourceID, details string) {
	if s.auditLogSvc == nil {
		return
	}
	userID := getUserIDFromContext(ctx)
	if userID == "" {
		userID = "anonymous"
	}
	_ = s.auditLogSvc.RecordAction(ctx, userID, action, "document", resourceID, details)
}

// configEqual 比较两个页面配置的序列化内容
func configEqual(a, b *document.TemplateConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

// getUserIDFromContext 从 context 中获取用户ID
func getUserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	// 从 context 中获取用户ID（由请求中间件设置）
	if userID, ok := ctx.Value("user_id").(string); ok {
		return userID
	}
	return ""
}

// clearDocumentCache 清除文档缓存
func (s *documentService) clearDocumentCache(id string) {
	s.cache.Range(func(key, value interface{}) bool {
		keyStr := key.(string)
		if len(keyStr) > len(id) && keyStr[:len(id)] == id && keyStr[len(id)] == ':' {
			s.cache.Delete(key)
		}
		return true
	})
}
