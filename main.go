package main

import (
	"errors"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"marketpro/config"
	"marketpro/middleware"
	"marketpro/routes"
	"marketpro/store"
	"marketpro/web"
)

const version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Error reporting, only when a DSN is configured
	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
			Release:     "marketpro@" + version,
		}); err != nil {
			logger.Fatalf("Failed to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize the in-memory store with the demo data set
	dataStore := store.New()
	if err := dataStore.Seed(); err != nil {
		logger.Fatalf("Failed to seed store: %v", err)
	}

	// Create Fiber app with the page template engine
	app := fiber.New(fiber.Config{
		Views:        web.NewEngine(),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(middleware.CORS(corsConfig()))

	// Setup routes
	routes.SetupRoutes(app, dataStore, logger)
	web.SetupRoutes(app, dataStore, logger)

	// Health check endpoint
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": version,
		})
	})

	// Start server
	logger.Infof("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// errorHandler converts unhandled errors to the generic 500 envelope
// and forwards them to sentry when it is configured. Handlers map
// their own failures; anything arriving here is unclassified.
func errorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Path()).Error("unhandled error")
			if config.AppConfig.SentryDSN != "" {
				sentry.CaptureException(err)
			}
		}

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}

func corsConfig() middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	if origins := config.AppConfig.CORSOrigins; origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	}
	return cfg
}

func splitOrigins(origins string) []string {
	var out []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
