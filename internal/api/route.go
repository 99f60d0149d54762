package api

import (
	"time"

	"github.com/Amrsono/The-Shop/internal/api/middleware"
	v1 "github.com/Amrsono/The-Shop/internal/api/v1"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, profiles repository.ProfileRepository,
	m *metrics.Metrics, jwtSecret string, logger *zap.Logger) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(middleware.Identity(jwtSecret, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "storefront",
		})
	})

	public := app.Group("/api/v1")
	public.Get("/products", handler.ListProducts)
	public.Get("/products/:id", handler.GetProduct)
	public.Post("/rewards/quote", handler.QuoteRedemption)
	public.Post("/orders", handler.PlaceOrder)

	me := public.Group("/me", middleware.RequireAuth())
	me.Get("/points", handler.MyPoints)
	me.Get("/points/history", handler.MyPointsHistory)
	me.Get("/orders", handler.MyOrders)

	admin := public.Group("/admin", middleware.RequireAdmin(profiles))
	admin.Get("/orders", handler.AdminListOrders)
	admin.Get("/orders/:id", handler.AdminGetOrder)
	admin.Put("/orders/:id/status", handler.AdminUpdateOrderStatus)
	admin.Post("/products", handler.AdminCreateProduct)
	admin.Put("/products/:id", handler.AdminUpdateProduct)
	admin.Delete("/products/:id", handler.AdminDeleteProduct)
	admin.Get("/users", handler.AdminListUsers)
	admin.Post("/users/:id/points", handler.AdminAdjustPoints)
	admin.Get("/rewards-config", handler.AdminGetRewardsConfig)
	admin.Put("/rewards-config", handler.AdminUpdateRewardsConfig)
}
