package v1

import (
	"strconv"

	"github.com/avododokhov/numisvault/internal/models/catalog"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// coinQueryFromRequest reads the optional filter set from query params.
func coinQueryFromRequest(c *fiber.Ctx) catalog.CoinQuery {
	atoi := func(key string) int {
		n, _ := strconv.Atoi(c.Query(key))
		return n
	}
	return catalog.CoinQuery{
		Search:         c.Query("search"),
		CountryID:      atoi("countryId"),
		DenominationID: atoi("denominationId"),
		MaterialID:     atoi("materialId"),
		ConditionID:    atoi("conditionId"),
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
		Page:           atoi("page"),
		Limit:          atoi("limit"),
	}
}

// ListCoins returns the filtered, paginated coin catalog.
func ListCoins(c *fiber.Ctx) error {
	q := coinQueryFromRequest(c)
	rows, pagination, err := catalog.ListCoins(c.UserContext(), DB, q)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithData(rows).WithPagination(pagination).Send()
}

// GetCoin returns one coin by id.
func GetCoin(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	row, err := catalog.GetCoinByID(c.UserContext(), DB, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, row)
}

// CreateCoin validates and persists a new catalog coin.
func CreateCoin(c *fiber.Ctx) error {
	var coin catalog.Coin
	if err := parseBody(c, &coin); err != nil {
		return utils.SendError(c, err)
	}

	if err := catalog.CreateCoin(c.UserContext(), DB, &coin); err != nil {
		return utils.SendError(c, err)
	}

	Logger.Info(c.UserContext()).WithMeta(utils.Map{"coin": coin.Name}).Logs("Coin created")
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(coin).Send()
}

// UpdateCoin replaces the editable fields of a coin.
func UpdateCoin(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var coin catalog.Coin
	if err := parseBody(c, &coin); err != nil {
		return utils.SendError(c, err)
	}

	if err := catalog.UpdateCoin(c.UserContext(), DB, id, &coin); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, coin)
}

// DeleteCoin removes a coin from the catalog.
func DeleteCoin(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := catalog.DeleteCoin(c.UserContext(), DB, id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("Coin deleted successfully").Send()
}
