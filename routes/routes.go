package routes

import (
	"srif-api/config"
	"srif-api/controllers"
	"srif-api/middleware"
	"srif-api/models"
	"srif-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes registers the API surface. All handlers receive their database
// and mail dependencies here; nothing reaches for globals.
func SetupRoutes(router *gin.Engine, db *gorm.DB, mailer *config.Mailer) {
	notifier := services.NewNotifier(mailer)

	auth := controllers.NewAuthController(db)
	submissions := controllers.NewSubmissionController(db)
	adminSubmissions := controllers.NewAdminSubmissionController(db, notifier)
	announcements := controllers.NewAnnouncementController(db)
	gallery := controllers.NewGalleryController(db)
	committees := controllers.NewCommitteeController(db)
	speakers := controllers.NewSpeakerController(db)
	contact := controllers.NewContactController(db, notifier)
	settings := controllers.NewSettingsController(db)
	public := controllers.NewPublicController(db)

	api := router.Group("/api")
	{
		// Public routes, rate limited per IP.
		pub := api.Group("")
		pub.Use(middleware.RateLimitMiddleware())
		{
			pub.GET("/health", public.Health)
			pub.GET("/affiliations", public.Affiliations)
			pub.GET("/settings", public.Settings)
			pub.GET("/announcements", public.Announcements)
			pub.GET("/news", public.News)
			pub.GET("/news/:id", public.NewsItem)
			pub.GET("/gallery", public.Gallery)
			pub.GET("/stats", public.Stats)
			pub.GET("/speakers", speakers.List)
			pub.GET("/committees", committees.List)

			pub.POST("/submissions/research", submissions.SubmitResearch)
			pub.POST("/submissions/innovation", submissions.SubmitInnovation)
			pub.GET("/submissions/status/:id", submissions.GetStatus)

			pub.POST("/contact", contact.Submit)

			pub.POST("/admin/login", auth.Login)
		}

		// Admin routes: authenticated, admin or super_admin only.
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(db))
		admin.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		{
			admin.GET("/profile", auth.GetProfile)
			admin.PUT("/change-password", auth.ChangePassword)

			admin.GET("/dashboard", adminSubmissions.Dashboard)
			admin.GET("/research", adminSubmissions.ListResearch)
			admin.GET("/innovation", adminSubmissions.ListInnovation)
			admin.GET("/submission/:type/:id", adminSubmissions.GetSubmission)
			admin.PATCH("/submission/:type/:id", adminSubmissions.UpdateSubmission)
			admin.GET("/export/:type", adminSubmissions.Export)

			admin.GET("/announcements", announcements.List)
			admin.POST("/announcements", announcements.Create)
			admin.DELETE("/announcements/:id", announcements.Delete)

			admin.GET("/gallery", gallery.List)
			admin.POST("/gallery", gallery.Upload)
			admin.PATCH("/gallery/:id", gallery.Update)
			admin.DELETE("/gallery/:id", gallery.Delete)

			admin.POST("/committees", committees.Create)
			admin.DELETE("/committees/:id", committees.Delete)
			admin.POST("/committees/members", committees.AddMember)
			admin.DELETE("/committees/members/:id", committees.DeleteMember)

			admin.POST("/speakers", speakers.Create)
			admin.DELETE("/speakers/:id", speakers.Delete)

			admin.GET("/contact", contact.List)
			admin.PATCH("/contact/:id/read", contact.MarkRead)
			admin.DELETE("/contact/:id", contact.Delete)

			admin.GET("/settings", settings.List)
			admin.PATCH("/settings", settings.Update)
		}
	}
}
