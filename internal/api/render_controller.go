package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/render"
	"github.com/mautops/compose-gin/internal/service"
	"github.com/mautops/compose-gin/internal/utils"
)

// RenderController 渲染控制器
type RenderController struct {
	renderService service.RenderService
}

// NewRenderController 创建渲染控制器
func NewRenderController(renderService service.RenderService) *RenderController {
	return &RenderController{
		renderService: renderService,
	}
}

// Render 渲染已存储的文档
// @Summary      渲染文档
// @Description  根据 ID 渲染文档,请求体携带 CRM 运行时数据
// @Tags         渲染
// @Accept       json
// @Produce      json
// @Param        id path string true "文档 ID"
// @Param        version query int false "版本号,不传则渲染最新版本"
// @Param        request body service.RenderRequest true "运行时数据"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{id}/render [post]
func (c *RenderController) Render(ctx *gin.Context) {
	id := ctx.Param("id")

	// 验证文档 ID 格式
	if err := utils.ValidateDocumentID(id); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	version := 0
	if versionStr := ctx.Query("version"); versionStr != "" {
		var err error
		version, err = strconv.Atoi(versionStr)
		if err != nil {
			Error(ctx, http.StatusBadRequest, "invalid version", err.Error())
			return
		}
	}

	var req service.RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := c.renderService.RenderDocument(ctx.Request.Context(), id, version, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			Error(ctx, http.StatusNotFound, "document not found", err.Error())
			return
		}
		if errors.Is(err, render.ErrUnknownModule) {
			Error(ctx, http.StatusUnprocessableEntity, "unknown module", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to render document", err.Error())
		return
	}

	Success(ctx, result)
}

// Preview 渲染临时配置
// @Summary      预览渲染
// @Description  渲染请求体中携带的页面配置,不需要文档已存储
// @Tags         渲染
// @Accept       json
// @Produce      json
// @Param        request body service.PreviewRequest true "页面配置与运行时数据"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /render/preview [post]
func (c *RenderController) Preview(ctx *gin.Context) {
	var req service.PreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := c.renderService.Preview(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, render.ErrUnknownModule) {
			Error(ctx, http.StatusUnprocessableEntity, "unknown module", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to render preview", err.Error())
		return
	}

	Success(ctx, result)
}
