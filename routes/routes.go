package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"internship-management-api/controllers"
	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	notifier := services.NewNotificationService(db)
	projectService := services.NewProjectService(db, notifier)
	submissionService := services.NewSubmissionService(db, notifier)
	userService := services.NewUserService(db)
	analyticsService := services.NewAnalyticsService(db)

	authController := controllers.NewAuthController(db)
	internController := controllers.NewInternController(projectService, submissionService, analyticsService)
	teamLeadController := controllers.NewTeamLeadController(projectService, submissionService, userService, analyticsService)
	hrController := controllers.NewHRController(userService, analyticsService)
	ceoController := controllers.NewCEOController(userService, submissionService, analyticsService)
	userController := controllers.NewUserController(userService)
	notificationController := controllers.NewNotificationController(notifier)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", authController.Login)
			public.POST("/refresh", authController.RefreshToken)
			public.POST("/request-reset", authController.RequestPasswordReset)
			public.POST("/reset-password", authController.ResetPassword)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Internship Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(db))
		{
			// Auth management
			protected.POST("/logout", authController.Logout)

			// User profile
			protected.GET("/profile", authController.GetProfile)
			protected.PUT("/profile", authController.UpdateProfile)

			// Notifications (all authenticated users)
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationController.GetNotifications)
				notifications.GET("/counter", notificationController.GetNotificationCounter)
				notifications.PUT("/:id/read", notificationController.MarkNotificationRead)
				notifications.PUT("/read-all", notificationController.MarkAllNotificationsRead)
			}

			// User directory (CEO & HR)
			protected.GET("/users", middleware.RequireRole(models.RoleCEO, models.RoleHR), userController.GetAllUsers)

			// Intern workspace
			intern := protected.Group("/intern")
			intern.Use(middleware.RequireRole(models.RoleIntern))
			{
				intern.GET("/my-project", internController.GetMyProject)
				intern.POST("/submit", internController.SubmitWork)
				intern.GET("/my-submissions", internController.GetMySubmissions)
				intern.GET("/progress", internController.GetProgress)
			}

			// Team lead workspace
			teamLead := protected.Group("/team-lead")
			teamLead.Use(middleware.RequireRole(models.RoleTeamLead))
			{
				teamLead.POST("/projects", teamLeadController.CreateProject)
				teamLead.GET("/projects", teamLeadController.GetMyProjects)
				teamLead.GET("/projects/:id/submissions", teamLeadController.GetProjectSubmissions)
				teamLead.PUT("/projects/:id", teamLeadController.EditProject)
				teamLead.PUT("/projects/:id/complete", teamLeadController.CompleteProject)
				teamLead.DELETE("/projects/:id", teamLeadController.DeleteProject)
				teamLead.PUT("/submissions/:id/review", teamLeadController.ReviewSubmission)
				teamLead.GET("/my-interns", teamLeadController.GetMyInterns)
				teamLead.GET("/dashboard", teamLeadController.GetDashboard)
			}

			// HR workspace
			hr := protected.Group("/hr")
			hr.Use(middleware.RequireRole(models.RoleHR))
			{
				hr.POST("/interns", hrController.CreateIntern)
				hr.PUT("/assign-intern", hrController.AssignIntern)
				hr.GET("/analytics", hrController.GetAnalytics)
			}

			// CEO workspace
			ceo := protected.Group("/ceo")
			ceo.Use(middleware.RequireRole(models.RoleCEO))
			{
				ceo.PUT("/assign-teamlead", ceoController.AssignTeamLead)
				ceo.GET("/project-progress", ceoController.GetProjectProgress)
				ceo.GET("/analytics", ceoController.GetAnalytics)
				ceo.GET("/submissions", ceoController.GetAllSubmissions)
				ceo.GET("/productivity/:internId", ceoController.GetProductivity)
			}
		}
	}
}
