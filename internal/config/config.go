package config

import (
	"github.com/mobashirsifat123/charity/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWTConfig 令牌配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`       // 签名密钥
	ExpireHours int    `mapstructure:"expire_hours"` // 令牌有效期（小时）
}

// StripeConfig Stripe支付配置
type StripeConfig struct {
	SecretKey   string `mapstructure:"secret_key"`   // API密钥
	FrontendURL string `mapstructure:"frontend_url"` // 支付完成后跳转的前端地址
}

// UploadConfig 图片上传配置
type UploadConfig struct {
	Dir       string `mapstructure:"dir"`         // 上传文件存储目录
	MaxSizeMB int64  `mapstructure:"max_size_mb"` // 单个文件大小上限（MB）
}

type TaskConfig struct {
	DonationExpireMinutes int `mapstructure:"donation_expire_minutes"` // pending捐赠过期时间（分钟）
	AuditIntervalMinutes  int `mapstructure:"audit_interval_minutes"`  // 对账任务执行间隔（分钟）
	AuditWorkers          int `mapstructure:"audit_workers"`           // 对账任务协程池大小
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/charity")

	// 设置默认值
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "charity")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("jwt.expire_hours", 24)
	viper.SetDefault("stripe.frontend_url", "http://localhost:3000")
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.max_size_mb", 5)
	viper.SetDefault("task.donation_expire_minutes", 60)
	viper.SetDefault("task.audit_interval_minutes", 30)
	viper.SetDefault("task.audit_workers", 4)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
