package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mautops/compose-gin/internal/catalog"
	"github.com/mautops/compose-gin/internal/document"
	"github.com/mautops/compose-gin/internal/metrics"
	"github.com/mautops/compose-gin/internal/render"
	"github.com/mautops/compose-gin/internal/token"
)

// RenderService 渲染服务接口
type RenderService interface {
	RenderDocument(ctx context.Context, id string, version int, req *RenderRequest) (*render.DocumentRender, error)
	Preview(ctx context.Context, req *PreviewRequest) (*render.DocumentRender, error)
}

// RenderRequest 渲染已存储文档的请求
// @Description 渲染请求,携带 CRM 运行时数据
type RenderRequest struct {
	Lead  map[string]any `json:"lead"`  // 客户数据
	Quote map[string]any `json:"quote"` // 报价数据
	Org   map[string]any `json:"org"`   // 组织数据
	Tbl   map[string]any `json:"tbl"`   // 字段引用表
	Live  bool           `json:"live"`  // true 为正式渲染,false 为编辑预览
}

// PreviewRequest 渲染临时配置的请求,不需要文档已存储
// @Description 预览请求,直接携带页面配置与运行时数据
type PreviewRequest struct {
	Config *document.TemplateConfig `json:"config" binding:"required"` // 页面与模块配置
	Lead   map[string]any           `json:"lead"`
	Quote  map[string]any           `json:"quote"`
	Org    map[string]any           `json:"org"`
	Tbl    map[string]any           `json:"tbl"`
	Live   bool                     `json:"live"`
}

// renderService 渲染服务实现
type renderService struct {
	documentSvc DocumentService
	catalog     *catalog.Registry
	auditLogSvc AuditLogService
}

// NewRenderService 创建渲染服务
func NewRenderService(documentSvc DocumentService, reg *catalog.Registry, auditLogSvc AuditLogService) RenderService {
	if reg == nil {
		reg = catalog.Builtin()
	}
	return &renderService{
		documentSvc: documentSvc,
		catalog:     reg,
		auditLogSvc: auditLogSvc,
	}
}

// RenderDocument 渲染已存储的文档
func (s *renderService) RenderDocument(ctx context.Context, id string, version int, req *RenderRequest) (*render.DocumentRender, error) {
	start := time.Now()

	// 1. 加载文档
	doc, err := s.documentSvc.Get(id, version)
	if err != nil {
		metrics.RecordRender("error")
		return nil, err
	}
	if doc.Config == nil {
		metrics.RecordRender("error")
		return nil, fmt.Errorf("document %s has no page configuration", id)
	}

	// 2. 构建运行时上下文并渲染
	runtime := buildRuntimeContext(req.Lead, req.Quote, req.Org, req.Tbl)
	result, err := render.RenderDocument(doc.Config, s.catalog, runtime, req.Live)
	if err != nil {
		metrics.RecordRender("error")
		return nil, fmt.Errorf("failed to render document %s: %w", id, err)
	}

	// 3. 记录指标与审计日志
	metrics.RecordRender("success")
	metrics.ObserveRenderDuration(time.Since(start).Seconds())
	if s.auditLogSvc != nil {
		userID := getUserIDFromContext(ctx)
		if userID == "" {
			userID = "anonymous"
		}
		details := fmt.Sprintf(`{"document_id":"%s","version":%d,"live":%t}`, id, doc.Version, req.Live)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "render", "document", id, details)
	}

	return result, nil
}

// Preview 渲染临时配置
func (s *renderService) Preview(ctx context.Context, req *PreviewRequest) (*render.DocumentRender, error) {
	start := time.Now()

	if req.Config == nil {
		metrics.RecordRender("error")
		return nil, fmt.Errorf("preview config is required")
	}

	runtime := buildRuntimeContext(req.Lead, req.Quote, req.Org, req.Tbl)
	result, err := render.RenderDocument(req.Config, s.catalog, runtime, req.Live)
	if err != nil {
		metrics.RecordRender("error")
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}

	metrics.RecordRender("success")
	metrics.ObserveRenderDuration(time.Since(start).Seconds())

	return result, nil
}

// buildRuntimeContext 组装 token 解析上下文
// 所有数据源都为空时返回 nil,渲染流程按编辑模式处理插值
func buildRuntimeContext(lead, quote, org, tbl map[string]any) *token.RuntimeContext {
	if lead == nil && quote == nil && org == nil && tbl == nil {
		return nil
	}
	return &token.RuntimeContext{
		Lead:  lead,
		Quote: quote,
		Org:   org,
		Tbl:   tbl,
	}
}
