package v1

import (
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the application settings, falling back to the
// defaults when nothing has been saved yet.
func GetSettings(c *fiber.Ctx) error {
	settings, err := collectibles.GetSettings(c.UserContext(), DB)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, settings)
}

// UpdateSettings replaces the application settings. The operation is an
// upsert: repeating the same payload leaves a single row behind.
func UpdateSettings(c *fiber.Ctx) error {
	var settings collectibles.AppSettings
	if err := parseBody(c, &settings); err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.UpsertSettings(c.UserContext(), DB, &settings); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, settings)
}
