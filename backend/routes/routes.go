package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/controllers"
	"trak/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is running and healthy"})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/auth/register", authController.Register)
	app.Post("/auth/login", authController.Login)
	app.Get("/auth/google", authController.GoogleLogin)
	app.Get("/auth/google/callback", authController.GoogleCallback)
	app.Post("/auth/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	app.Get("/auth/me", authMiddleware, authController.Me)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Put("/user/profile", authMiddleware, userController.UpdateProfile)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg)
	dashboard := app.Group("/dashboard", authMiddleware)
	dashboard.Get("/summary", dashboardController.GetSummary)
	dashboard.Get("/checklist", dashboardController.GetChecklist)
	dashboard.Get("/recent", dashboardController.GetRecentSessions)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := app.Group("/courses", authMiddleware)
	courses.Post("/", coursesController.CreateCourses)
	courses.Get("/", coursesController.GetCourses)

	// Log routes
	logController := controllers.NewLogController(db, cfg)
	app.Post("/logs", authMiddleware, logController.LogStudySessions)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	app.Get("/analytics", authMiddleware, analyticsController.GetAnalytics)
}
