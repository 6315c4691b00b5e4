package v1

import (
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// ListCategories returns categories, optionally scoped to one collectible
// type via ?type=: that type's categories plus the "all" categories.
func ListCategories(c *fiber.Ctx) error {
	collectibleType := c.Query("type")

	var (
		categories []collectibles.Category
		err        error
	)
	if collectibleType != "" {
		categories, err = collectibles.ListCategoriesForType(c.UserContext(), DB, collectibleType)
	} else {
		categories, err = collectibles.ListCategories(c.UserContext(), DB)
	}
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, categories)
}

// GetCategory returns one category by id.
func GetCategory(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	category, err := collectibles.GetCategoryByID(c.UserContext(), DB, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, category)
}

// CreateCategory persists a new category.
func CreateCategory(c *fiber.Ctx) error {
	var category collectibles.Category
	if err := parseBody(c, &category); err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.CreateCategory(c.UserContext(), DB, &category); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(category).Send()
}

// UpdateCategory replaces the editable fields of a category.
func UpdateCategory(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	var category collectibles.Category
	if err := parseBody(c, &category); err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.UpdateCategory(c.UserContext(), DB, id, &category); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, category)
}

// DeleteCategory removes a category. Items referencing it keep their
// dangling category_id and render as uncategorized.
func DeleteCategory(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.DeleteCategory(c.UserContext(), DB, id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Category deleted successfully").Send()
}
