package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	// API 请求计数器
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// API 请求响应时间
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 文档创建数
	documentsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "documents_created_total",
			Help: "Total number of documents created",
		},
	)

	// 渲染操作数
	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renders_total",
			Help: "Total number of document render operations",
		},
		[]string{"status"}, // success, error
	)

	// 渲染耗时
	renderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "render_duration_seconds",
			Help:    "Document render duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// 数据库连接数
	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	databaseConnectionsMax = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_max",
			Help: "Maximum number of database connections",
		},
	)

	// 存储的文档版本数
	documentVersionsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "document_versions_stored",
			Help: "Number of document versions stored in the database",
		},
	)
)

var (
	once sync.Once
)

func init() {
	// 注册指标
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(documentsCreatedTotal)
	prometheus.MustRegister(rendersTotal)
	prometheus.MustRegister(renderDuration)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)
	prometheus.MustRegister(databaseConnectionsMax)
	prometheus.MustRegister(documentVersionsStored)

	// 注册 Go 运行时指标（只注册一次）
	once.Do(func() {
		// 尝试注册 Go 运行时指标，如果已注册则忽略错误
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler 返回 Prometheus 指标处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest 记录 API 请求
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordDocumentCreated 记录文档创建
func RecordDocumentCreated() {
	documentsCreatedTotal.Inc()
}

// RecordRender 记录渲染操作
func RecordRender(status string) {
	rendersTotal.WithLabelValues(status).Inc()
}

// ObserveRenderDuration 记录渲染耗时
func ObserveRenderDuration(seconds float64) {
	renderDuration.Observe(seconds)
}

// UpdateDatabaseConnections 更新数据库连接数指标
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.OpenConnections - stats.Idle))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	databaseConnectionsMax.Set(float64(stats.MaxOpenConnections))

	return nil
}

// UpdateDocumentVersionsStored 更新存储的文档版本数指标
func UpdateDocumentVersionsStored(count float64) {
	documentVersionsStored.Set(count)
}
