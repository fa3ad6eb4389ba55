package routes

import (
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/config"
	"github.com/LunaaVerse/ttm-sub002/internal/handlers"
	"github.com/LunaaVerse/ttm-sub002/internal/middleware"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	directoryHandler *handlers.DirectoryHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Reference data — any authenticated actor
	api.Get("/barangays", middleware.JWTProtected(cfg), directoryHandler.ListBarangays)

	// Report intake and read access — any authenticated actor
	reports := api.Group("/reports", middleware.JWTProtected(cfg))
	reports.Post("/", reportHandler.Create)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.Get)
	reports.Get("/:id/history", reportHandler.History)

	// Staff surface — verified employees and admins share one manager;
	// there is no per-surface transition logic.
	staff := api.Group("/staff",
		middleware.JWTProtected(cfg),
		middleware.RoleRequired(db, models.RoleEmployee, models.RoleAdmin))
	staff.Get("/statistics", reportHandler.Statistics)
	staff.Get("/directory/staff", directoryHandler.ListStaff)
	staff.Get("/directory/tanods", directoryHandler.ListTanods)
	staff.Get("/directory/:id", directoryHandler.GetActor)
	staff.Post("/reports/:id/verify", reportHandler.Verify)
	staff.Post("/reports/:id/clarify", reportHandler.RequestClarification)
	staff.Post("/reports/:id/reject", reportHandler.Reject)
	staff.Post("/reports/:id/assign", reportHandler.Assign)
	staff.Post("/reports/:id/reassign", reportHandler.Reassign)
	staff.Post("/reports/:id/status", reportHandler.UpdateStatus)
	staff.Post("/reports/:id/dispatch", reportHandler.SetDispatch)
	staff.Post("/reports/:id/resolve", reportHandler.Resolve)
	staff.Post("/reports/:id/priority", reportHandler.UpdatePriority)
	staff.Post("/reports/:id/tanod", reportHandler.TanodFollowUp)
	staff.Post("/reports/bulk-assign", reportHandler.BulkAssign)
	staff.Get("/analytics", analyticsHandler.Overview)

	// Admin surface
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/users", directoryHandler.CreateUser)
	admin.Get("/condition-costs", directoryHandler.ListConditionCosts)
	admin.Put("/condition-costs/:condition", directoryHandler.SetConditionCost)
	admin.Post("/reports/:id/override", reportHandler.OverrideStatus)
}
