package routes

import (
	"lablend/internal/adapters/http/handlers"
	"lablend/internal/adapters/http/middleware"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/config"
	"lablend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	materialRepo := repositories.NewMaterialRepository(db)
	userRepo := repositories.NewUserRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo, cfg)
	materialService := services.NewMaterialService(materialRepo)
	userService := services.NewUserService(userRepo)
	loanService := services.NewLoanService(loanRepo, userRepo, materialRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	materialHandler := handlers.NewMaterialHandler(materialService)
	userHandler := handlers.NewUserHandler(userService)
	loanHandler := handlers.NewLoanHandler(loanService)
	reportHandler := handlers.NewReportHandler(loanService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Put("/admin", middleware.AuthMiddleware(cfg), authHandler.UpdateAdmin)

	// Everything below requires a live session
	protected := app.Group("", middleware.AuthMiddleware(cfg))

	// Material routes. Collection paths are plural, item paths singular.
	protected.Get("/materials", materialHandler.List)
	protected.Post("/materials", materialHandler.Create)
	protected.Get("/material/:id", materialHandler.Get)
	protected.Put("/material/:id", materialHandler.Update)
	protected.Delete("/material/:id", materialHandler.Delete)

	// User routes. Delete keeps its historical /user-edit prefix.
	protected.Get("/users", userHandler.List)
	protected.Post("/users", userHandler.Create)
	protected.Get("/user/:id", userHandler.Get)
	protected.Put("/user/:id", userHandler.Update)
	protected.Delete("/user-edit/:id", userHandler.Delete)

	// Loan routes
	protected.Get("/loans/report", reportHandler.LoanReport)
	protected.Get("/loans", loanHandler.List)
	protected.Post("/loans", loanHandler.Create)
	protected.Get("/loan/:id", loanHandler.Get)
	protected.Put("/loan/:id", loanHandler.Update)
	protected.Delete("/loan/:id", loanHandler.Delete)

	// Dashboard & option tables
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
	protected.Get("/options", dashboardHandler.GetOptions)
}
