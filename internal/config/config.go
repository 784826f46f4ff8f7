package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Env      string         `mapstructure:"env"` // 环境: development, production
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
	Render   RenderConfig   `mapstructure:"render"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string  `mapstructure:"host"`
	Port           int     `mapstructure:"port"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`   // 每秒请求数,0 表示禁用限流
	RateLimitBurst int     `mapstructure:"rate_limit_burst"` // 突发请求数
	CSRFEnabled    bool    `mapstructure:"csrf_enabled"`     // 是否开启 CSRF 保护
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 秒
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error
	Format string `mapstructure:"format"` // 日志格式: json, text
	Output string `mapstructure:"output"` // 输出位置: stdout, file, both
}

// RenderConfig 渲染配置
type RenderConfig struct {
	CacheTTL       int     `mapstructure:"cache_ttl"`        // 文档缓存时间,秒
	DefaultTVARate float64 `mapstructure:"default_tva_rate"` // 默认 TVA 税率,百分比
}

// BackupConfig 备份配置
type BackupConfig struct {
	Dir      string `mapstructure:"dir"`      // 备份目录
	Interval int    `mapstructure:"interval"` // 自动备份间隔,秒,0 表示禁用
	Keep     int    `mapstructure:"keep"`     // 保留的备份数量
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

// Load 加载配置,支持配置文件和环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 设置默认值
	setDefaults(v)

	// 如果提供了配置文件路径,从文件加载
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		// 尝试从默认位置加载
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.compose-gin")
		// 忽略配置文件不存在的错误,使用默认值
		_ = v.ReadInConfig()
	}

	// 支持环境变量
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// IsProduction 判断是否为生产环境
func IsProduction(cfg *Config) bool {
	if cfg == nil {
		return false
	}
	return cfg.Env == "production"
}

// Default 返回默认配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults 设置配置默认值
func setDefaults(v *viper.Viper) {
	// 环境变量
	env := v.GetString("env")
	if env == "" {
		env = os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
	}
	v.SetDefault("env", env)

	// 服务器默认配置
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_rps", 100)
	v.SetDefault("server.rate_limit_burst", 200)
	v.SetDefault("server.csrf_enabled", false)

	// 数据库默认配置
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "compose")
	v.SetDefault("database.sslmode", "disable")

	// 数据库连接池配置（根据环境设置默认值）
	if env == "production" {
		v.SetDefault("database.max_idle_conns", 20)
		v.SetDefault("database.max_open_conns", 200)
		v.SetDefault("database.conn_max_lifetime", 3600) // 1 小时
		v.SetDefault("database.conn_max_idle_time", 300) // 5 分钟
	} else {
		v.SetDefault("database.max_idle_conns", 10)
		v.SetDefault("database.max_open_conns", 100)
		v.SetDefault("database.conn_max_lifetime", 3600) // 1 小时
		v.SetDefault("database.conn_max_idle_time", 600) // 10 分钟
	}

	// CORS 默认配置
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "Authorization", "X-Request-ID"})
	v.SetDefault("cors.max_age", 86400)

	// 日志配置（根据环境设置默认值）
	if env == "production" {
		v.SetDefault("log.level", "warn")
		v.SetDefault("log.format", "json")
	} else {
		v.SetDefault("log.level", "debug")
		v.SetDefault("log.format", "text")
	}
	v.SetDefault("log.output", "stdout")

	// 渲染默认配置
	v.SetDefault("render.cache_ttl", 300)       // 5 分钟
	v.SetDefault("render.default_tva_rate", 21) // 比利时标准税率

	// 备份默认配置
	v.SetDefault("backup.dir", "./backups")
	v.SetDefault("backup.interval", 0) // 默认禁用自动备份
	v.SetDefault("backup.keep", 7)

	// 链路追踪默认配置
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
}
