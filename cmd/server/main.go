package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/config"
	"github.com/mobashirsifat123/charity/internal/database"
	"github.com/mobashirsifat123/charity/internal/logger"
	"github.com/mobashirsifat123/charity/internal/payment"
	"github.com/mobashirsifat123/charity/internal/router"
	"github.com/mobashirsifat123/charity/internal/task"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化Stripe支付客户端
	provider := payment.NewStripeProvider(cfg.Stripe)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, provider, cfg)

	// 启动后台任务
	manager := task.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
