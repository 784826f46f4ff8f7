package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/catalog"
	"github.com/mautops/compose-gin/internal/document"
)

// CatalogController 模块目录控制器
// 暴露内置模块定义与文档模板
type CatalogController struct {
	registry *catalog.Registry
}

// NewCatalogController 创建模块目录控制器
func NewCatalogController(registry *catalog.Registry) *CatalogController {
	if registry == nil {
		registry = catalog.Builtin()
	}
	return &CatalogController{registry: registry}
}

// ListModules 列出模块定义
// @Summary      获取模块定义列表
// @Description  获取所有内置模块定义,支持按分类过滤
// @Tags         模块目录
// @Accept       json
// @Produce      json
// @Param        category query string false "分类过滤"
// @Success      200  {object}  Response
// @Router       /catalog/modules [get]
func (c *CatalogController) ListModules(ctx *gin.Context) {
	if cat := ctx.Query("category"); cat != "" {
		Success(ctx, c.registry.ByCategory(catalog.Category(cat)))
		return
	}
	Success(ctx, c.registry.All())
}

// GetModule 获取模块定义
// @Summary      获取模块定义详情
// @Description  根据 ID 获取单个模块定义
// @Tags         模块目录
// @Accept       json
// @Produce      json
// @Param        id path string true "模块 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /catalog/modules/{id} [get]
func (c *CatalogController) GetModule(ctx *gin.Context) {
	id := ctx.Param("id")

	def, ok := c.registry.Get(id)
	if !ok {
		Error(ctx, http.StatusNotFound, "module not found", "no module definition for id "+id)
		return
	}

	Success(ctx, def)
}

// ListCategories 列出模块分类
// @Summary      获取模块分类列表
// @Tags         模块目录
// @Accept       json
// @Produce      json
// @Success      200  {object}  Response
// @Router       /catalog/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	Success(ctx, c.registry.Categories())
}

// ListTemplates 列出内置文档模板
// @Summary      获取文档模板列表
// @Tags         模块目录
// @Accept       json
// @Produce      json
// @Success      200  {object}  Response
// @Router       /catalog/templates [get]
func (c *CatalogController) ListTemplates(ctx *gin.Context) {
	Success(ctx, document.BuiltinTemplates())
}

// InstantiateTemplate 实例化文档模板
// @Summary      实例化文档模板
// @Description  将内置模板展开为模块实例列表,未知模块类型会被跳过并在 warnings 中返回
// @Tags         模块目录
// @Accept       json
// @Produce      json
// @Param        id path string true "模板 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /catalog/templates/{id}/instantiate [post]
func (c *CatalogController) InstantiateTemplate(ctx *gin.Context) {
	id := ctx.Param("id")

	tpl, ok := document.FindBuiltinTemplate(id)
	if !ok {
		Error(ctx, http.StatusNotFound, "template not found", "no document template for id "+id)
		return
	}

	instances, warnings := document.Instantiate(tpl, c.registry)
	Success(ctx, gin.H{
		"modules":  instances,
		"warnings": warnings,
	})
}
