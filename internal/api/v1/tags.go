package v1

import (
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// ListTags returns all tags ordered by name.
func ListTags(c *fiber.Ctx) error {
	tags, err := collectibles.ListTags(c.UserContext(), DB)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tags)
}

// CreateTag persists a new tag.
func CreateTag(c *fiber.Ctx) error {
	var tag collectibles.Tag
	if err := parseBody(c, &tag); err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.CreateTag(c.UserContext(), DB, &tag); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(tag).Send()
}

// UpdateTag replaces the editable fields of a tag.
func UpdateTag(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	var tag collectibles.Tag
	if err := parseBody(c, &tag); err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.UpdateTag(c.UserContext(), DB, id, &tag); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tag)
}

// DeleteTag removes a tag; collectibles carrying its name keep it.
func DeleteTag(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := collectibles.DeleteTag(c.UserContext(), DB, id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Tag deleted successfully").Send()
}
