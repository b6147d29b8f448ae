package router

import (
	"github.com/SafidyRH/test-technique-nexta/internal/config"
	"github.com/SafidyRH/test-technique-nexta/internal/handler"
	"github.com/SafidyRH/test-technique-nexta/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, uploader *storage.Uploader, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "crowdfunding-platform",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		projectHandler := handler.NewProjectHandler(db)
		contributionHandler := handler.NewContributionHandler(db)
		uploadHandler := handler.NewUploadHandler(uploader)

		// 项目相关路由
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/popular", projectHandler.GetPopularProjects)
			projects.GET("/recent", projectHandler.GetRecentProjects)
			projects.GET("/almost-funded", projectHandler.GetAlmostFundedProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/contributions", contributionHandler.GetProjectContributions)
			projects.GET("/:id/contributions/stats", contributionHandler.GetProjectContributionStats)
			projects.GET("/:id/contributions/top", contributionHandler.GetTopContributors)
		}

		// 贡献相关路由
		contributions := v1.Group("/contributions")
		{
			contributions.POST("", contributionHandler.CreateContribution)
			contributions.GET("/recent", contributionHandler.GetRecentContributions)
		}

		// 平台统计
		v1.GET("/stats", projectHandler.GetPlatformStats)

		// 图片上传
		v1.POST("/uploads/project-image", uploadHandler.UploadProjectImage)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
