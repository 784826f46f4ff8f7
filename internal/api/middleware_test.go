package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.POST("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

// TestRequestIDMiddleware_Generate 测试自动生成请求 ID
func TestRequestIDMiddleware_Generate(t *testing.T) {
	router := newMiddlewareRouter(RequestIDMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// TestRequestIDMiddleware_Passthrough 测试透传已有请求 ID
func TestRequestIDMiddleware_Passthrough(t *testing.T) {
	router := newMiddlewareRouter(RequestIDMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

// TestSecurityHeadersMiddleware 测试安全响应头
func TestSecurityHeadersMiddleware(t *testing.T) {
	router := newMiddlewareRouter(SecurityHeadersMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

// TestCORSMiddleware_AllowAll 测试允许所有源
func TestCORSMiddleware_AllowAll(t *testing.T) {
	router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSMiddleware_SpecificOrigin 测试指定源
func TestCORSMiddleware_SpecificOrigin(t *testing.T) {
	router := newMiddlewareRouter(CORSMiddleware([]string{"http://allowed.com"}))

	// 允许的源
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://allowed.com")
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://allowed.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	// 不允许的源
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.com")
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSMiddleware_Preflight 测试预检请求
func TestCORSMiddleware_Preflight(t *testing.T) {
	router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// TestRateLimitMiddleware 测试限流
func TestRateLimitMiddleware(t *testing.T) {
	router := newMiddlewareRouter(RateLimitMiddleware(1, 1))

	// 第一个请求通过
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// 突发额度用尽后被限流
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// TestVersionMiddleware 测试 API 版本提取
func TestVersionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(VersionMiddleware())
	router.GET("/api/v2/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetAPIVersion(c))
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetAPIVersion(c))
	})

	// URL 路径版本
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/ping", nil))
	assert.Equal(t, "v2", w.Body.String())

	// 默认版本
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "v1", w.Body.String())

	// 请求头版本优先
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v2/ping", nil)
	req.Header.Set("API-Version", "v3")
	router.ServeHTTP(w, req)
	assert.Equal(t, "v3", w.Body.String())
}

// TestI18nMiddleware 测试语言协商与翻译
func TestI18nMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(I18nMiddleware())
	router.GET("/msg", func(c *gin.Context) {
		c.String(http.StatusOK, T(c, "error.not_found"))
	})

	// 默认英语
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/msg", nil))
	assert.Equal(t, "Resource not found", w.Body.String())

	// 查询参数指定语言
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/msg?lang=fr", nil))
	assert.Equal(t, "Ressource introuvable", w.Body.String())

	// Accept-Language 头
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/msg", nil)
	req.Header.Set("Accept-Language", "fr-BE,fr;q=0.9,en;q=0.8")
	router.ServeHTTP(w, req)
	assert.Equal(t, "Ressource introuvable", w.Body.String())

	// 中文
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/msg?lang=zh-CN", nil))
	assert.Equal(t, "资源未找到", w.Body.String())
}

// TestHTTPSRedirectMiddleware 测试 HTTPS 重定向
func TestHTTPSRedirectMiddleware(t *testing.T) {
	router := newMiddlewareRouter(HTTPSRedirectMiddleware())

	// HTTP 请求被重定向
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "https://")

	// 带 X-Forwarded-Proto 的请求正常处理
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestHTTPSRedirectMiddlewareWithConfig_Disabled 测试禁用时不重定向
func TestHTTPSRedirectMiddlewareWithConfig_Disabled(t *testing.T) {
	router := newMiddlewareRouter(HTTPSRedirectMiddlewareWithConfig(false))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestCSRFMiddleware 测试 CSRF 保护
func TestCSRFMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CSRFMiddleware(nil))
	router.GET("/token", func(c *gin.Context) {
		token, err := GetCSRFToken(c)
		require.NoError(t, err)
		c.String(http.StatusOK, token)
	})
	router.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// GET 请求不需要 token
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Body.String()
	require.NotEmpty(t, token)

	// 无 token 的 POST 被拒绝
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 带有效 token 的 POST 通过
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("X-CSRF-Token", token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
