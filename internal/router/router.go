package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/auth"
	"github.com/mobashirsifat123/charity/internal/config"
	"github.com/mobashirsifat123/charity/internal/handler"
	"github.com/mobashirsifat123/charity/internal/middleware"
	"github.com/mobashirsifat123/charity/internal/payment"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, provider payment.Provider, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	tokens := auth.NewTokenManager(cfg.JWT)

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Charity Crowdfunding API is running!",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":      "/auth",
				"campaigns": "/campaigns",
				"donations": "/donations",
				"admin":     "/admin",
				"upload":    "/upload",
				"stripe":    "/stripe",
			},
		})
	})

	// 上传文件静态服务
	r.Static("/uploads", cfg.Upload.Dir)

	// 认证相关路由
	authHandler := handler.NewAuthHandler(db, tokens)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// 活动相关路由
	campaignHandler := handler.NewCampaignHandler(db)
	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.GetCampaigns)
		campaigns.GET("/categories", campaignHandler.GetCategories)
		campaigns.GET("/:id", campaignHandler.GetCampaign)
		campaigns.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), campaignHandler.CreateCampaign)
		campaigns.PUT("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), campaignHandler.UpdateCampaign)
		campaigns.DELETE("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), campaignHandler.DeleteCampaign)
	}

	// 捐赠相关路由
	donationHandler := handler.NewDonationHandler(db)
	donations := r.Group("/donations", middleware.RequireAuth(tokens))
	{
		donations.POST("", donationHandler.CreateDonation)
		donations.GET("/my-donations", donationHandler.GetMyDonations)
	}

	// Stripe支付相关路由
	paymentHandler := handler.NewPaymentHandler(db, provider)
	stripeGroup := r.Group("/stripe", middleware.RequireAuth(tokens))
	{
		stripeGroup.POST("/create-checkout-session", paymentHandler.CreateCheckoutSession)
		stripeGroup.POST("/verify-donation", paymentHandler.VerifyDonation)
	}

	// 图片上传
	uploadHandler := handler.NewUploadHandler(cfg.Upload)
	r.POST("/upload", middleware.RequireAuth(tokens), uploadHandler.UploadImage)

	// 管理端路由
	adminHandler := handler.NewAdminHandler(db)
	admin := r.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/donations", adminHandler.GetAllDonations)
	}

	// 404兜底
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "路由不存在",
		})
	})

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
