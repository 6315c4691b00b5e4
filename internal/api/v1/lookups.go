package v1

import (
	"github.com/avododokhov/numisvault/internal/models/catalog"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// LookupHandlers bundles the CRUD handlers for one lookup table. All four
// lookup tables (countries, denominations, materials, conditions) share
// the same REST shape and only differ in entity name and list ordering.
type LookupHandlers struct {
	List   fiber.Handler
	Get    fiber.Handler
	Create fiber.Handler
	Update fiber.Handler
	Delete fiber.Handler
}

// NewLookupHandlers builds the handler set for a lookup entity.
func NewLookupHandlers[T any](entity, orderBy string) LookupHandlers {
	return LookupHandlers{
		List: func(c *fiber.Ctx) error {
			rows, err := catalog.ListLookup[T](c.UserContext(), DB, orderBy)
			if err != nil {
				return utils.SendError(c, err)
			}
			return utils.SendSuccess(c, rows)
		},
		Get: func(c *fiber.Ctx) error {
			id, err := idParam(c)
			if err != nil {
				return utils.SendError(c, err)
			}
			row, err := catalog.GetLookupByID[T](c.UserContext(), DB, entity, id)
			if err != nil {
				return utils.SendError(c, err)
			}
			return utils.SendSuccess(c, row)
		},
		Create: func(c *fiber.Ctx) error {
			var row T
			if err := parseBody(c, &row); err != nil {
				return utils.SendError(c, err)
			}
			if err := catalog.CreateLookup(c.UserContext(), DB, &row); err != nil {
				return utils.SendError(c, err)
			}
			return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(row).Send()
		},
		Update: func(c *fiber.Ctx) error {
			id, err := idParam(c)
			if err != nil {
				return utils.SendError(c, err)
			}
			var row T
			if err := parseBody(c, &row); err != nil {
				return utils.SendError(c, err)
			}
			if err := catalog.UpdateLookup(c.UserContext(), DB, entity, id, &row); err != nil {
				return utils.SendError(c, err)
			}
			return utils.SendSuccess(c, row)
		},
		Delete: func(c *fiber.Ctx) error {
			id, err := idParam(c)
			if err != nil {
				return utils.SendError(c, err)
			}
			if err := catalog.DeleteLookup[T](c.UserContext(), DB, entity, id); err != nil {
				return utils.SendError(c, err)
			}
			return utils.Success(c).WithMessage(entity + " deleted successfully").Send()
		},
	}
}

var (
	Countries     = NewLookupHandlers[catalog.Country]("Country", "name")
	Denominations = NewLookupHandlers[catalog.Denomination]("Denomination", "value")
	Materials     = NewLookupHandlers[catalog.Material]("Material", "name")
	Conditions    = NewLookupHandlers[catalog.Condition]("Condition", "name")
)
