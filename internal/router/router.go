package router

import (
	"prohub/internal/handlers"
	"prohub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	reportHandler := handlers.NewReportHandler()
	notificationHandler := handlers.NewNotificationHandler()
	moderationHandler := handlers.NewModerationHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public routes
	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Authenticated routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/reports", reportHandler.Create)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}

	// Moderation routes (moderator and above)
	mod := r.Group("/mod")
	mod.Use(middleware.ModeratorRequired())
	{
		mod.GET("/reports", moderationHandler.ListReports)
		mod.POST("/reports/:id/review", moderationHandler.ReviewReport)
		mod.POST("/reports/:id/resolve", moderationHandler.ResolveReport)
		mod.POST("/reports/:id/dismiss", moderationHandler.DismissReport)

		mod.POST("/content/:type/:id/hide", moderationHandler.HideContent)
		mod.POST("/content/:type/:id/unhide", moderationHandler.UnhideContent)
		mod.GET("/content/:type/:id/actions", moderationHandler.AuditTrail)

		mod.POST("/users/:id/warnings", moderationHandler.IssueWarning)
		mod.GET("/users/:id/warnings", moderationHandler.ListWarnings)
		mod.POST("/users/:id/lift", moderationHandler.LiftSanction)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/warning-types", adminHandler.ListWarningTypes)
		admin.POST("/warning-types", adminHandler.CreateWarningType)
		admin.POST("/warning-types/:id", adminHandler.UpdateWarningType)
		admin.POST("/sweep-expirations", adminHandler.SweepExpirations)
	}
}
