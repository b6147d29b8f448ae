package main

import (
	"context"

	"github.com/SafidyRH/test-technique-nexta/internal/config"
	"github.com/SafidyRH/test-technique-nexta/internal/database"
	"github.com/SafidyRH/test-technique-nexta/internal/logger"
	"github.com/SafidyRH/test-technique-nexta/internal/router"
	"github.com/SafidyRH/test-technique-nexta/internal/scheduler"
	"github.com/SafidyRH/test-technique-nexta/internal/storage"
	"github.com/gin-gonic/gin"
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

	// 初始化图片上传器（可选）
	var uploader *storage.Uploader
	if cfg.Storage.Enabled {
		uploader, err = storage.New(context.Background(), cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize storage client: %v", err)
		}
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, uploader, cfg)

	// 启动定时任务
	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
