package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/controllers"
	"academy/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Public pricing page
	packagesController := controllers.NewPackagesController(db, cfg)
	app.Get("/api/packages", packagesController.ListPackages)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourse)
	app.Get("/api/my/courses", authMiddleware, coursesController.MyCourses)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Put("/api/progress/:courseId", authMiddleware, progressController.UpdateProgress)
	app.Get("/api/admin/progress", authMiddleware, adminMiddleware, progressController.GetAllProgress)

	// Certificates routes
	certificatesController := controllers.NewCertificatesController(db, cfg)
	app.Get("/api/certificates", authMiddleware, certificatesController.ListCertificates)
	app.Post("/api/certificates", authMiddleware, certificatesController.CreateCertificate)

	// Tickets routes
	ticketsController := controllers.NewTicketsController(db, cfg)
	app.Get("/api/tickets", authMiddleware, ticketsController.ListTickets)
	app.Post("/api/tickets", authMiddleware, ticketsController.CreateTicket)
	app.Put("/api/admin/tickets/:id/close", authMiddleware, adminMiddleware, ticketsController.CloseTicket)

	// Admin routes for courses
	adminCourses := app.Group("/api/admin/courses", authMiddleware, adminMiddleware)
	adminCourses.Post("/", coursesController.CreateCourse)
	adminCourses.Put("/:id", coursesController.UpdateCourse)
	adminCourses.Delete("/:id", coursesController.DeleteCourse)
	adminCourses.Post("/:id/modules", coursesController.AddModule)
	adminCourses.Post("/modules/:moduleId/lessons", coursesController.AddLesson)

	// Admin routes for users and packages
	adminUsers := app.Group("/api/admin/users", authMiddleware, adminMiddleware)
	adminUsers.Get("/", userController.ListUsers)
	adminUsers.Put("/:id", userController.UpdateUser)
	adminUsers.Delete("/:id", userController.DeleteUser)

	adminPackages := app.Group("/api/admin/packages", authMiddleware, adminMiddleware)
	adminPackages.Post("/", packagesController.CreatePackage)
	adminPackages.Delete("/:id", packagesController.DeletePackage)
}
