// Package v1 contains the HTTP handlers for the NumisVault REST API.
package v1

import (
	"context"
	"strconv"

	"github.com/avododokhov/numisvault/internal/config"
	"github.com/avododokhov/numisvault/internal/filterstate"
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/logger"
	storage "github.com/avododokhov/numisvault/pkg/redis"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	DB        *gorm.DB
	Redis     *storage.RedisClient
	Logger    *logger.Logger
	Cfg       *config.Config
	Store     collectibles.Store
	Filters   *filterstate.Store
	Activity  ActivityRecorder
	Validator = utils.NewValidator()
)

// ActivityRecorder appends one audit entry. Swappable like Store so
// handlers stay exercisable without Postgres.
type ActivityRecorder func(ctx context.Context, action, entityType, entityName, details string) error

// Setup wires the package-level dependencies used by every handler.
func Setup(cfg *config.Config, db *gorm.DB, rclient *storage.RedisClient, log *logger.Logger) {
	Cfg = cfg
	DB = db
	Redis = rclient
	Logger = log
	Store = collectibles.NewGormStore(db)
	Filters = filterstate.NewStore(rclient)
	Activity = func(ctx context.Context, action, entityType, entityName, details string) error {
		return collectibles.LogActivity(ctx, db, action, entityType, entityName, details)
	}
}

// idParam parses the :id route parameter as a positive integer.
func idParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, utils.ValidationError("id must be a positive integer")
	}
	return id, nil
}

// uuidParam parses the :id route parameter as a UUID.
func uuidParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, utils.ValidationError("id must be a valid UUID")
	}
	return id, nil
}

// parseBody parses and validates a request body, returning the first
// violation as a 400-ready error.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := utils.StrictBodyParser(c, out); err != nil {
		Logger.Warn(c.UserContext()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to parse request body")
		return utils.ValidationError("Invalid request format")
	}
	if verr := Validator.Validate(out); verr != nil {
		Logger.Warn(c.UserContext()).WithMeta(utils.Map{"error": verr.First()}).Logs("Validation failed")
		return utils.ValidationError(verr.First())
	}
	return nil
}
