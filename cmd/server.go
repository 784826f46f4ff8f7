/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/api"
	"github.com/mautops/compose-gin/internal/config"
	"github.com/mautops/compose-gin/internal/container"
	"github.com/mautops/compose-gin/internal/metrics"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the Compose Gin API server.
The server will listen on the configured host and port,
and provide REST API interfaces for document composition and rendering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. 初始化容器
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 3. 初始化链路追踪（可选）
		if cfg.Tracing.Enabled {
			if err := api.InitTracing("compose-gin", cfg.Tracing.JaegerEndpoint); err != nil {
				return fmt.Errorf("failed to initialize tracing: %w", err)
			}
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				api.ShutdownTracing(shutdownCtx)
			}()
		}

		// 4. 启动后台组件
		bgCtx, bgCancel := context.WithCancel(context.Background())
		defer bgCancel()

		go ctr.Hub().Run()

		collector := metrics.NewCollector(ctr.DB(), 15*time.Second)
		collector.Start()
		defer collector.Stop()

		ctr.BackupScheduler().Start(bgCtx)

		// 5. 初始化控制器
		documentController := api.NewDocumentController(ctr.DocumentService(), ctr.Hub())
		renderController := api.NewRenderController(ctr.RenderService())
		catalogController := api.NewCatalogController(ctr.Catalog())
		statisticsController := api.NewStatisticsController(ctr.StatisticsService())
		backupController := api.NewBackupController(ctr.BackupService())

		// 6. 设置路由
		router := setupRoutesWithControllers(ctr, documentController, renderController, catalogController, statisticsController, backupController, cfg)

		// 7. 启动服务器
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		// 启动服务器（在 goroutine 中）
		go func() {
			log.Printf("Server starting on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		// 优雅关闭
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		log.Println("Server exited")
		return nil
	},
}

// setupRoutesWithControllers 设置路由并绑定控制器
func setupRoutesWithControllers(
	ctr *container.Container,
	documentController *api.DocumentController,
	renderController *api.RenderController,
	catalogController *api.CatalogController,
	statisticsController *api.StatisticsController,
	backupController *api.BackupController,
	cfg *config.Config,
) *gin.Engine {
	// 使用配置的 host 和 port 设置 Swagger URL
	// 如果 host 是 0.0.0.0,使用 localhost 作为 Swagger URL
	swaggerHost := cfg.Server.Host
	if swaggerHost == "0.0.0.0" {
		swaggerHost = "localhost"
	}
	router := api.SetupRoutesWithConfig(ctr.Hub(), ctr.DB(), swaggerHost, cfg.Server.Port, &cfg.CORS)

	// 链路追踪中间件（只覆盖业务路由）
	if cfg.Tracing.Enabled {
		router.Use(api.TracingMiddleware())
	}

	// 生产环境强制 HTTPS
	router.Use(api.HTTPSRedirectMiddlewareWithConfig(config.IsProduction(cfg)))

	// 限流中间件
	if cfg.Server.RateLimitRPS > 0 {
		router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	}

	// CSRF 保护,生产环境 Cookie 仅走 HTTPS
	if cfg.Server.CSRFEnabled {
		csrfConfig := api.DefaultCSRFConfig()
		csrfConfig.CookieSecure = config.IsProduction(cfg)
		router.Use(api.CSRFMiddleware(csrfConfig))
		router.GET("/csrf-token", func(c *gin.Context) {
			token, err := api.GetCSRFToken(c)
			if err != nil {
				api.Error(c, http.StatusInternalServerError, "failed to generate csrf token", err.Error())
				return
			}
			api.Success(c, gin.H{"token": token})
		})
	}

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 文档管理路由
		documents := v1.Group("/documents")
		{
			documents.POST("", documentController.Create)
			documents.GET("", documentController.List)
			documents.GET("/:id", documentController.Get)
			documents.PUT("/:id", documentController.Update)
			documents.DELETE("/:id", documentController.Delete)
			documents.GET("/:id/versions", documentController.ListVersions)
			documents.POST("/:id/render", renderController.Render)
		}

		// 渲染预览路由
		render := v1.Group("/render")
		{
			render.POST("/preview", renderController.Preview)
		}

		// 模块目录路由
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/modules", catalogController.ListModules)
			catalog.GET("/modules/:id", catalogController.GetModule)
			catalog.GET("/categories", catalogController.ListCategories)
			catalog.GET("/templates", catalogController.ListTemplates)
			catalog.POST("/templates/:id/instantiate", catalogController.InstantiateTemplate)
		}

		// 统计路由
		v1.GET("/statistics", statisticsController.GetStatistics)

		// 备份管理路由
		backups := v1.Group("/backups")
		{
			backups.POST("", backupController.CreateBackup)
			backups.GET("", backupController.ListBackups)
			backups.POST("/:filename/restore", backupController.RestoreBackup)
			backups.DELETE("/:filename", backupController.DeleteBackup)
		}
	}

	// 自定义 NoRoute 处理器,返回 JSON 格式的 404
	// 必须在所有业务路由注册之后设置,确保未匹配的路由返回 JSON 而不是 HTML
	router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// 服务器配置标志
	serverCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
	serverCmd.Flags().String("host", "0.0.0.0", "Server host")
	serverCmd.Flags().Int("port", 8080, "Server port")
}

// LoadConfig 加载配置
func LoadConfig(configPath string) (*config.Config, error) {
	return config.Load(configPath)
}
