package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/api/http/handlers"
	"github.com/spec-kit/renewal-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Tasks          *handlers.TasksHandler
	Portal         *handlers.PortalHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)
	authGroup.Post("/staff/login", cfg.Auth.StaffLogin)
	authGroup.Post("/staff/register", cfg.Auth.StaffRegister)
	authGroup.Post("/merchants/login", cfg.Auth.MerchantLogin)
	authGroup.Post("/merchants/register", cfg.Auth.MerchantRegister)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/dashboard/stats", cfg.Dashboard.Stats)
	admin.Get("/dashboard/status-distribution", cfg.Dashboard.StatusDistribution)
	admin.Get("/dashboard/performance", cfg.Dashboard.Performance)
	admin.Get("/staff", cfg.Dashboard.ListStaff)
	admin.Get("/merchants", cfg.Dashboard.ListMerchants)
	admin.Post("/merchants", cfg.Dashboard.CreateMerchant)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	staff.Get("/tasks", cfg.Tasks.ListActive)
	staff.Get("/tasks/history", cfg.Tasks.ListHistory)
	staff.Get("/tasks/:id", cfg.Tasks.GetTask)
	staff.Post("/tasks/:id/status", cfg.Tasks.UpdateStatus)

	merchants := app.Group("/merchants", cfg.AuthMiddleware.Handle, auth.RequireMerchant())
	merchants.Get("/me", cfg.Portal.Me)
}
