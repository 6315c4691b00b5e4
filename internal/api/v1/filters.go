package v1

import (
	"github.com/avododokhov/numisvault/internal/stats"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// GetFilter restores the saved filter configuration for a view. Views
// that never saved a filter get the empty configuration back.
func GetFilter(c *fiber.Ctx) error {
	filter, err := Filters.Load(c.UserContext(), c.Params("key"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, filter)
}

// SaveFilter persists a view's filter configuration so it survives
// reloads.
func SaveFilter(c *fiber.Ctx) error {
	var filter stats.Filter
	if err := utils.StrictBodyParser(c, &filter); err != nil {
		return utils.SendError(c, utils.ValidationError("Invalid request format"))
	}
	if err := Filters.Save(c.UserContext(), c.Params("key"), filter); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Filters saved").Send()
}
