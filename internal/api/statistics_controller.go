package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/service"
)

// StatisticsController 统计控制器
type StatisticsController struct {
	statisticsService service.StatisticsService
}

// NewStatisticsController 创建统计控制器
func NewStatisticsController(statisticsService service.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// GetStatistics 获取统计信息
// @Summary      获取统计信息
// @Description  获取文档总量、按日创建量和操作分布
// @Tags         统计
// @Accept       json
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	documents, err := c.statisticsService.GetDocumentStatistics()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get document statistics", err.Error())
		return
	}

	byTime, err := c.statisticsService.GetDocumentStatisticsByTime()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get document statistics by time", err.Error())
		return
	}

	actions, err := c.statisticsService.GetActionStatistics()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get action statistics", err.Error())
		return
	}

	Success(ctx, gin.H{
		"documents": documents,
		"by_time":   byTime,
		"actions":   actions,
	})
}
