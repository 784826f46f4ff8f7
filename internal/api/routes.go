package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/config"
	"github.com/mautops/compose-gin/internal/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/mautops/compose-gin/docs" // 导入生成的 docs 包
)

// SetupRoutes 配置基础路由（健康检查、指标、实时推送、Swagger）
// 业务路由由 cmd/server 按控制器注册
func SetupRoutes(hub *websocket.Hub, db *gorm.DB) *gin.Engine {
	return SetupRoutesWithConfig(hub, db, "localhost", 8080, nil)
}

// SetupRoutesWithConfig 按配置设置基础路由
// swaggerHost 和 port 用于生成 Swagger JSON URL,corsConfig 为 nil 时不启用 CORS
func SetupRoutesWithConfig(hub *websocket.Hub, db *gorm.DB, swaggerHost string, port int, corsConfig *config.CORSConfig) *gin.Engine {
	router := gin.Default()

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(ErrorHandlerMiddleware())
	router.Use(VersionMiddleware())
	router.Use(I18nMiddleware())
	if corsConfig != nil {
		router.Use(CORSMiddleware(corsConfig.AllowedOrigins))
	}

	// 健康检查
	healthController := NewHealthController(db)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// WebSocket 路由
	if hub != nil {
		router.GET("/ws/documents", websocket.WebSocketHandler(hub))
	}

	// SSE 路由
	if hub != nil {
		router.GET("/sse/documents", SSEHandler(hub))
	}

	// Swagger UI 路由
	swaggerURL := fmt.Sprintf("http://%s:%d/swagger/doc.json", swaggerHost, port)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(swaggerURL),
	))

	return router
}
