// Package routes assembles the HTTP surface: middleware stack, the
// /api resource groups, and the health probe.
package routes

import (
	"context"
	"time"

	v1 "github.com/avododokhov/numisvault/internal/api/v1"
	"github.com/avododokhov/numisvault/internal/auth"
	"github.com/avododokhov/numisvault/internal/config"
	"github.com/avododokhov/numisvault/pkg/logger"
	storage "github.com/avododokhov/numisvault/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewRoutes(ctx context.Context, app *fiber.App, cfg *config.Config, db *gorm.DB, log *logger.Logger, rclient *storage.RedisClient) {
	app.Use(
		logger.SetupLogger(log),
		recover.New(),
		cors.New(
			cors.Config{
				AllowOrigins:     cfg.FrontendURL,
				AllowCredentials: true,
				AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			},
		),
		compress.New(
			compress.Config{
				Level: compress.LevelBestCompression,
			},
		),
		limiter.New(
			limiter.Config{
				Expiration: 15 * time.Minute,
				Max:        100,
				KeyGenerator: func(c *fiber.Ctx) string {
					return c.IP()
				},
			},
		),
	)
	app.Use(log.Middleware())

	v1.Setup(cfg, db, rclient, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UTC()})
	})

	api := app.Group("/api")

	coins := api.Group("/coins")
	coins.Get("/", v1.ListCoins)
	coins.Get("/:id", v1.GetCoin)
	coins.Post("/", v1.CreateCoin)
	coins.Put("/:id", v1.UpdateCoin)
	coins.Delete("/:id", v1.DeleteCoin)

	mountLookup(api, "/countries", v1.Countries)
	mountLookup(api, "/denominations", v1.Denominations)
	mountLookup(api, "/materials", v1.Materials)
	mountLookup(api, "/conditions", v1.Conditions)

	collections := api.Group("/collections")
	collections.Get("/", v1.ListCollections)
	collections.Get("/:id", v1.GetCollection)
	collections.Post("/", v1.CreateCollection)
	collections.Put("/:id", v1.UpdateCollection)
	collections.Delete("/:id", v1.DeleteCollection)
	collections.Get("/:id/coins", v1.ListCollectionCoins)
	collections.Post("/:id/coins", v1.AddCollectionCoin)
	collections.Delete("/:id/coins/:coinId", v1.RemoveCollectionCoin)

	protected := auth.Protected(cfg.JWTSecret)
	users := api.Group("/users")
	users.Get("/", v1.ListUsers)
	users.Get("/:id", v1.GetUser)
	users.Post("/register", v1.RegisterUser)
	users.Post("/login", v1.LoginUser)
	users.Put("/:id", protected, v1.UpdateUser)
	users.Delete("/:id", protected, v1.DeleteUser)

	items := api.Group("/collectibles")
	items.Get("/", v1.ListCollectibles)
	items.Get("/export", v1.ExportCollectibles)
	items.Get("/analytics", v1.CollectibleAnalytics)
	items.Post("/bulk", v1.BulkCreateCollectibles)
	items.Post("/bulk-delete", v1.BulkDeleteCollectibles)
	items.Get("/:id", v1.GetCollectible)
	items.Post("/", v1.CreateCollectible)
	items.Put("/:id", v1.UpdateCollectible)
	items.Delete("/:id", v1.DeleteCollectible)

	categories := api.Group("/categories")
	categories.Get("/", v1.ListCategories)
	categories.Get("/:id", v1.GetCategory)
	categories.Post("/", v1.CreateCategory)
	categories.Put("/:id", v1.UpdateCategory)
	categories.Delete("/:id", v1.DeleteCategory)

	tags := api.Group("/tags")
	tags.Get("/", v1.ListTags)
	tags.Post("/", v1.CreateTag)
	tags.Put("/:id", v1.UpdateTag)
	tags.Delete("/:id", v1.DeleteTag)

	api.Get("/activity", v1.ListActivity)

	api.Get("/settings", v1.GetSettings)
	api.Put("/settings", v1.UpdateSettings)

	api.Get("/filters/:key", v1.GetFilter)
	api.Put("/filters/:key", v1.SaveFilter)

	// Teardown of the redis client and logger belongs to main's defers,
	// after app.Shutdown has drained in-flight requests.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})
}

func mountLookup(api fiber.Router, prefix string, h v1.LookupHandlers) {
	g := api.Group(prefix)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
