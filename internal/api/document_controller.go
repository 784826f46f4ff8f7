package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/metrics"
	"github.com/mautops/compose-gin/internal/service"
	"github.com/mautops/compose-gin/internal/utils"
	"github.com/mautops/compose-gin/internal/websocket"
)

// DocumentController 文档控制器
type DocumentController struct {
	documentService service.DocumentService
	hub             *websocket.Hub
}

// NewDocumentController 创建文档控制器
func NewDocumentController(documentService service.DocumentService, hub *websocket.Hub) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		hub:             hub,
	}
}

// Create 创建文档
// @Summary      创建文档
// @Description  创建新文档,可以从内置模板实例化
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        request body service.CreateDocumentRequest true "文档信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents [post]
func (c *DocumentController) Create(ctx *gin.Context) {
	var req service.CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	// 输入验证和清理
	if err := utils.ValidateDocumentName(req.Name); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document name", err.Error())
		return
	}
	req.Name, _ = utils.TrimAndValidate(req.Name, 255)
	if req.Description != "" {
		req.Description, _ = utils.TrimAndValidate(req.Description, 1000)
	}

	doc, err := c.documentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "template not found") {
			Error(ctx, http.StatusBadRequest, "template not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to create document", err.Error())
		return
	}

	metrics.RecordDocumentCreated()
	if c.hub != nil {
		c.hub.PublishDocumentEvent("created", doc.ID, doc.Version)
	}

	Success(ctx, doc)
}

// Get 获取文档
// @Summary      获取文档详情
// @Description  根据 ID 获取文档详情,支持版本查询
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        id path string true "文档 ID"
// @Param        version query int false "版本号,不传则获取最新版本"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{id} [get]
func (c *DocumentController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	// 验证文档 ID 格式
	if err := utils.ValidateDocumentID(id); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	versionStr := ctx.Query("version")

	version := 0
	if versionStr != "" {
		var err error
		version, err = strconv.Atoi(versionStr)
		if err != nil {
			Error(ctx, http.StatusBadRequest, "invalid version", err.Error())
			return
		}
	}

	doc, err := c.documentService.Get(id, version)
	if err != nil {
		Error(ctx, http.StatusNotFound, "document not found", err.Error())
		return
	}

	Success(ctx, doc)
}

// Update 更新文档
// @Summary      更新文档
// @Description  更新现有文档,内容变化时创建新版本
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        id path string true "文档 ID"
// @Param        request body service.UpdateDocumentRequest true "文档信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{id} [put]
func (c *DocumentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	// 验证文档 ID 格式
	if err := utils.ValidateDocumentID(id); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	var req service.UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	// 输入验证和清理
	if req.Name != "" {
		if err := utils.ValidateDocumentName(req.Name); err != nil {
			Error(ctx, http.StatusBadRequest, "invalid document name", err.Error())
			return
		}
		req.Name, _ = utils.TrimAndValidate(req.Name, 255)
	}
	if req.Description != "" {
		req.Description, _ = utils.TrimAndValidate(req.Description, 1000)
	}

	doc, err := c.documentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		// 检查是否是文档不存在的错误
		if strings.Contains(err.Error(), "document not found") {
			Error(ctx, http.StatusNotFound, "document not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to update document", err.Error())
		return
	}

	if c.hub != nil {
		c.hub.PublishDocumentEvent("updated", doc.ID, doc.Version)
	}

	Success(ctx, doc)
}

// Delete 删除文档
// @Summary      删除文档
// @Description  删除文档的所有版本
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        id path string true "文档 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{id} [delete]
func (c *DocumentController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	// 验证文档 ID 格式
	if err := utils.ValidateDocumentID(id); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	if err := c.documentService.Delete(ctx.Request.Context(), id); err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to delete document", err.Error())
		return
	}

	if c.hub != nil {
		c.hub.PublishDocumentEvent("deleted", id, 0)
	}

	Success(ctx, nil)
}

// List 列出文档
// @Summary      获取文档列表
// @Description  分页获取文档列表,支持搜索和排序
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        search query string false "搜索关键词"
// @Param        sort_by query string false "排序字段" default(created_at)
// @Param        order query string false "排序方向" Enums(asc, desc) default(desc)
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	var filter service.DocumentListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	// 设置默认值
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	response, err := c.documentService.List(&filter)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list documents", err.Error())
		return
	}

	Paginated(ctx, response.Data, PaginationInfo{
		Page:      response.Pagination.Page,
		PageSize:  response.Pagination.PageSize,
		Total:     response.Pagination.Total,
		TotalPage: response.Pagination.TotalPage,
	})
}

// ListVersions 列出文档版本
// @Summary      获取文档版本列表
// @Description  获取指定文档的所有版本号列表
// @Tags         文档管理
// @Accept       json
// @Produce      json
// @Param        id path string true "文档 ID"
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{id}/versions [get]
func (c *DocumentController) ListVersions(ctx *gin.Context) {
	id := ctx.Param("id")

	versions, err := c.documentService.ListVersions(id)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list versions", err.Error())
		return
	}

	Success(ctx, versions)
}
