package api

import (
	"os"

	"fintracker/docs"
	"fintracker/internal/api/handlers"
	"fintracker/pkg/auth"
	"fintracker/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	txHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	goalHandler *handlers.GoalHandler,
	subHandler *handlers.SubscriptionHandler,
	reportHandler *handlers.ReportHandler,
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

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static SPA bundle, when present
	if _, err := os.Stat("web/static/index.html"); err == nil {
		appLogger.Info("Serving static files", zap.String("path", "web/static"))
		app.Static("/", "web/static")
	}

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	transactions := protected.Group("/transactions")
	transactions.Get("", txHandler.List)
	transactions.Post("", txHandler.Create)
	transactions.Put("/:id", txHandler.Update)
	transactions.Delete("/:id", txHandler.Delete)

	budgets := protected.Group("/budgets")
	budgets.Get("", budgetHandler.List)
	budgets.Post("", budgetHandler.Create)
	budgets.Put("/:id", budgetHandler.Update)
	budgets.Delete("/:id", budgetHandler.Delete)

	goals := protected.Group("/goals")
	goals.Get("", goalHandler.List)
	goals.Post("", goalHandler.Create)
	goals.Put("/:id", goalHandler.Update)
	goals.Post("/:id/add", goalHandler.AddFunds)
	goals.Delete("/:id", goalHandler.Delete)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.Get("", subHandler.List)
	subscriptions.Post("", subHandler.Create)
	subscriptions.Put("/:id", subHandler.Update)
	subscriptions.Delete("/:id", subHandler.Delete)

	reports := protected.Group("/reports")
	reports.Get("/summary", reportHandler.Summary)

	return app
}
