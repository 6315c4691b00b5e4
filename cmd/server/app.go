package main

import (
	"context"
	"os/signal"
	"syscall"

	routes "github.com/avododokhov/numisvault/internal/api"
	"github.com/avododokhov/numisvault/internal/config"
	"github.com/avododokhov/numisvault/internal/db"
	"github.com/avododokhov/numisvault/internal/models"
	"github.com/avododokhov/numisvault/pkg/logger"
	storage "github.com/avododokhov/numisvault/pkg/redis"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	log, err := logger.NewLogger()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Close()

	redisClient, err := storage.NewRedis(ctx, cfg.RedisAddr, "")
	if err != nil {
		log.Error(ctx).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to initialize Redis")
		panic(err)
	}
	defer redisClient.Close(log)

	gormDB, err := db.NewDB(ctx, cfg.DSN(), models.RegisterModels())
	if err != nil {
		log.Error(ctx).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to initialize PostgreSQL database")
		panic("DB init failed")
	}
	defer db.CloseDB(log)

	app := fiber.New(fiber.Config{
		AppName: "NumisVault",
	})
	routes.NewRoutes(ctx, app, cfg, gormDB, log, redisClient)

	go func() {
		<-ctx.Done()
		app.Shutdown()
	}()

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Error(context.Background()).WithMeta(utils.Map{"error": err.Error()}).Logs("Server stopped")
	}
}
