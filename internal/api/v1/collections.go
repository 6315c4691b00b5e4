package v1

import (
	"strconv"

	"github.com/avododokhov/numisvault/internal/models/catalog"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// ListCollections returns all collections, optionally scoped to an owner
// via ?ownerId.
func ListCollections(c *fiber.Ctx) error {
	if ownerParam := c.Query("ownerId"); ownerParam != "" {
		ownerID, err := strconv.Atoi(ownerParam)
		if err != nil || ownerID < 1 {
			return utils.SendError(c, utils.ValidationError("ownerId must be a positive integer"))
		}
		rows, err := catalog.ListCollectionsByOwner(c.UserContext(), DB, ownerID)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, rows)
	}

	rows, err := catalog.ListCollections(c.UserContext(), DB)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, rows)
}

// GetCollection returns one collection by id.
func GetCollection(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	row, err := catalog.GetCollectionByID(c.UserContext(), DB, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, row)
}

// CreateCollection persists a new collection.
func CreateCollection(c *fiber.Ctx) error {
	var collection catalog.Collection
	if err := parseBody(c, &collection); err != nil {
		return utils.SendError(c, err)
	}
	if err := catalog.CreateCollection(c.UserContext(), DB, &collection); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(collection).Send()
}

// UpdateCollection replaces the editable fields of a collection.
func UpdateCollection(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	var collection catalog.Collection
	if err := parseBody(c, &collection); err != nil {
		return utils.SendError(c, err)
	}
	if err := catalog.UpdateCollection(c.UserContext(), DB, id, &collection); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collection)
}

// DeleteCollection removes a collection.
func DeleteCollection(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := catalog.DeleteCollection(c.UserContext(), DB, id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Collection deleted successfully").Send()
}

// ListCollectionCoins returns the coins linked into a collection.
func ListCollectionCoins(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	rows, err := catalog.CoinsInCollection(c.UserContext(), DB, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, rows)
}

// AddCollectionCoin links a coin into a collection.
func AddCollectionCoin(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var link catalog.CollectionCoin
	if err := utils.StrictBodyParser(c, &link); err != nil {
		return utils.SendError(c, utils.ValidationError("Invalid request format"))
	}
	link.CollectionID = id
	if verr := Validator.Validate(&link); verr != nil {
		return utils.SendError(c, utils.ValidationError(verr.First()))
	}

	if err := catalog.AddCoinToCollection(c.UserContext(), DB, &link); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(link).Send()
}

// RemoveCollectionCoin unlinks a coin from a collection.
func RemoveCollectionCoin(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	coinID, err := strconv.Atoi(c.Params("coinId"))
	if err != nil || coinID < 1 {
		return utils.SendError(c, utils.ValidationError("coinId must be a positive integer"))
	}

	if err := catalog.RemoveCoinFromCollection(c.UserContext(), DB, id, coinID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Coin removed from collection").Send()
}
