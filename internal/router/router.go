package router

import (
	"civicboard/internal/config"
	"civicboard/internal/forum"
	"civicboard/internal/handlers"
	"civicboard/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures and returns the Gin router
func Setup(db *gorm.DB, engine *forum.Engine, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	topicHandler := handlers.NewTopicHandler(engine)
	replyHandler := handlers.NewReplyHandler(engine)
	reportHandler := handlers.NewReportHandler(engine)
	userHandler := handlers.NewUserHandler(engine)

	// API routes
	api := router.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/categories", topicHandler.GetCategories)

		// Topics routes
		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.GetTopics)
			topics.GET("/:id", topicHandler.GetTopic)
			topics.POST("", middleware.AuthMiddleware(), topicHandler.CreateTopic)
			topics.PUT("/:id", middleware.AuthMiddleware(), topicHandler.UpdateTopic)
			topics.DELETE("/:id", middleware.AuthMiddleware(), topicHandler.DeleteTopic)
			topics.POST("/:id/vote", middleware.AuthMiddleware(), topicHandler.VoteTopic)
			topics.POST("/:id/follow", middleware.AuthMiddleware(), topicHandler.FollowTopic)
			topics.POST("/:id/replies", middleware.AuthMiddleware(), replyHandler.CreateReply)
		}

		// Replies routes
		replies := api.Group("/replies")
		{
			replies.PUT("/:id", middleware.AuthMiddleware(), replyHandler.UpdateReply)
			replies.DELETE("/:id", middleware.AuthMiddleware(), replyHandler.DeleteReply)
			replies.POST("/:id/vote", middleware.AuthMiddleware(), replyHandler.VoteReply)
		}

		// Moderation routes
		reports := api.Group("/reports", middleware.AuthMiddleware())
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("", reportHandler.GetReports)
			reports.PUT("/:id/status", reportHandler.UpdateReportStatus)
		}

		// Profile routes
		me := api.Group("/me", middleware.AuthMiddleware())
		{
			me.GET("", userHandler.GetMe)
			me.POST("/notifications/read", userHandler.MarkNotificationsRead)
		}
	}

	return router
}
