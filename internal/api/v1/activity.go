package v1

import (
	"strconv"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// ListActivity returns recent audit entries, newest first. ?limit caps
// the page, defaulting to 100.
func ListActivity(c *fiber.Ctx) error {
	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			return utils.SendError(c, utils.ValidationError("limit must be a positive integer"))
		}
		limit = parsed
	}

	entries, err := collectibles.ListActivity(c.UserContext(), DB, limit)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, entries)
}
