package api

import (
	"os"
	"path/filepath"
	"time"

	"pocketsmart/docs"
	"pocketsmart/internal/api/handlers"
	"pocketsmart/internal/service"
	"pocketsmart/pkg/auth"
	"pocketsmart/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	analysisHandler *handlers.AnalysisHandler,
	profileHandler *handlers.ProfileHandler,
	expenseHandler *handlers.ExpenseHandler,
	insightHandler *handlers.InsightHandler,
	llmService *service.LLMService,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static client application (out-of-scope collaborator: the core
	// only serves it)
	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		app.Static("/static", webStaticPath)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath != "" {
			indexPath := filepath.Join(webStaticPath, "index.html")
			if fileExists(indexPath) {
				return c.SendFile(indexPath)
			}
		}
		return c.Status(fiber.StatusNotFound).SendString("Web interface not found. Please ensure web/static/index.html exists.")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"model":     llmService.ActiveModel(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Stateless one-shot core: snapshot in, analysis out
	app.Post("/analyze", analysisHandler.Analyze)
	app.Post("/chat", analysisHandler.Chat)

	api := app.Group("/api/v1")

	api.Get("/check-key", func(c *fiber.Ctx) error {
		if llmService.Available() {
			return c.JSON(fiber.Map{"valid": true, "model": llmService.ActiveModel()})
		}
		return c.JSON(fiber.Map{"valid": false, "message": "Add GIGACHAT_API_KEY to .env and restart."})
	})

	api.Post("/auth/login", authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Post("/user/setup", profileHandler.Setup)
	protected.Get("/user/profile", profileHandler.GetProfile)
	protected.Delete("/user/reset", profileHandler.Reset)

	protected.Post("/expenses", expenseHandler.AddExpense)
	protected.Get("/expenses", expenseHandler.ListExpenses)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	protected.Post("/budget/limits", profileHandler.SetBudgetLimits)
	protected.Post("/savings", profileHandler.UpdateSavings)

	protected.Get("/dashboard", insightHandler.Dashboard)
	protected.Post("/analyze", insightHandler.Analyze)
	protected.Post("/chat", insightHandler.Chat)
	protected.Get("/recommendations", insightHandler.Recommendations)
	protected.Post("/forecast", insightHandler.Forecast)

	return app
}

// findWebStaticPath locates the web/static directory relative to the
// working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"web/static",
		"../web/static",
		"../../web/static",
	}
	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			logger.Info("Serving static files", zap.String("path", path))
			return path
		}
	}
	logger.Warn("Web static directory not found, static files will not be served")
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
