package routes

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	controller "marketpro/controllers"
	"marketpro/middleware"
	"marketpro/store"
)

// SetupRoutes registers the JSON API. Page routes live in web.
func SetupRoutes(app *fiber.App, s *store.Store, logger *logrus.Logger) {
	authController := controller.NewAuthController(s, logger)
	userController := controller.NewUserController(s, logger)
	campaignController := controller.NewCampaignController(s, logger)
	contactController := controller.NewContactController(s, logger)
	analyticsController := controller.NewAnalyticsController(s, logger)
	dashboardController := controller.NewDashboardController(s, logger)

	api := app.Group("/api", fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", middleware.LoginRateLimiter(), authController.Login)

	// User routes
	api.Get("/users/:id", userController.GetUser)

	// Campaign routes
	campaign := api.Group("/campaigns")
	campaign.Get("/", campaignController.GetCampaigns)
	campaign.Post("/", campaignController.CreateCampaign)
	campaign.Get("/:id", campaignController.GetCampaign)
	campaign.Put("/:id", campaignController.UpdateCampaign)
	campaign.Delete("/:id", campaignController.DeleteCampaign)

	// Contact routes
	contact := api.Group("/contacts")
	contact.Get("/", contactController.GetContacts)
	contact.Post("/", contactController.CreateContact)
	contact.Get("/:id", contactController.GetContact)
	contact.Put("/:id", contactController.UpdateContact)
	contact.Delete("/:id", contactController.DeleteContact)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.Get("/", analyticsController.GetAnalytics)
	analytics.Post("/", analyticsController.CreateAnalytics)
	analytics.Get("/campaign/:id", analyticsController.GetCampaignAnalytics)

	// Dashboard routes
	api.Get("/dashboard/stats", dashboardController.GetDashboardStats)

	logger.Info("API routes initialized")
}
