package v1

import (
	"fmt"
	"time"

	"github.com/avododokhov/numisvault/internal/export"
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/internal/stats"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// logActivity records an audit entry and only warns on failure: the
// operation being recorded has already committed.
func logActivity(c *fiber.Ctx, action, entityType, entityName, details string) {
	if Activity == nil {
		return
	}
	if err := Activity(c.UserContext(), action, entityType, entityName, details); err != nil {
		Logger.Warn(c.UserContext()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to write activity log entry")
	}
}

// ListCollectibles returns the registry, optionally scoped to one type
// via ?type=coin|banknote|medal. Newest first.
func ListCollectibles(c *fiber.Ctx) error {
	collectibleType := c.Query("type")

	var (
		items []collectibles.Collectible
		err   error
	)
	if collectibleType != "" {
		if !utils.Contains([]string{collectibles.TypeCoin, collectibles.TypeBanknote, collectibles.TypeMedal}, collectibleType) {
			return utils.SendError(c, utils.ValidationError("type must be coin, banknote, or medal"))
		}
		items, err = Store.ListByType(c.UserContext(), collectibleType)
	} else {
		items, err = Store.List(c.UserContext())
	}
	if err != nil {
		return utils.SendError(c, err)
	}
	if items == nil {
		items = []collectibles.Collectible{}
	}
	return utils.SendSuccess(c, items)
}

// GetCollectible returns one registry item by id.
func GetCollectible(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	item, err := Store.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item)
}

// CreateCollectible validates and persists a new registry item.
func CreateCollectible(c *fiber.Ctx) error {
	var item collectibles.Collectible
	if err := parseBody(c, &item); err != nil {
		return utils.SendError(c, err)
	}

	if err := Store.Create(c.UserContext(), &item); err != nil {
		return utils.SendError(c, err)
	}

	logActivity(c, collectibles.ActionCreate, item.Type, item.Name, "")
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(item).Send()
}

// UpdateCollectible replaces the editable fields of a registry item.
func UpdateCollectible(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var item collectibles.Collectible
	if err := parseBody(c, &item); err != nil {
		return utils.SendError(c, err)
	}

	if err := Store.Update(c.UserContext(), id, &item); err != nil {
		return utils.SendError(c, err)
	}

	logActivity(c, collectibles.ActionUpdate, item.Type, item.Name, "")
	return utils.SendSuccess(c, item)
}

// DeleteCollectible removes a registry item.
func DeleteCollectible(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	item, err := Store.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := Store.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	logActivity(c, collectibles.ActionDelete, item.Type, item.Name, "")
	return utils.Success(c).WithMessage("Collectible deleted successfully").Send()
}

// BulkDeleteCollectibles deletes the given ids concurrently. Reporting is
// all-or-nothing: any failure yields a 500 for the whole request. Deletes
// that completed before the failure stay deleted.
func BulkDeleteCollectibles(c *fiber.Ctx) error {
	var body struct {
		IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.SendError(c, err)
	}

	g, ctx := errgroup.WithContext(c.UserContext())
	for _, id := range body.IDs {
		id := id
		g.Go(func() error {
			return Store.Delete(ctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		Logger.Error(c.UserContext()).WithMeta(utils.Map{"error": err.Error()}).Logs("Bulk delete failed")
		return utils.SendError(c, utils.StorageError(err))
	}

	logActivity(c, collectibles.ActionDelete, "collectible", "", fmt.Sprintf("bulk delete of %d items", len(body.IDs)))
	return utils.Success(c).WithMessage(fmt.Sprintf("%d collectibles deleted", len(body.IDs))).Send()
}

// BulkCreateCollectibles persists a batch of items in one request, the
// shape produced by the paste-import dialog. Items are created in input
// order; the first failure aborts the request and leaves earlier items in
// place.
func BulkCreateCollectibles(c *fiber.Ctx) error {
	var body struct {
		Items []collectibles.Collectible `json:"items" validate:"required,min=1,dive"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.SendError(c, err)
	}

	for i := range body.Items {
		if err := Store.Create(c.UserContext(), &body.Items[i]); err != nil {
			return utils.SendError(c, err)
		}
	}

	logActivity(c, collectibles.ActionImport, "collectible", "", fmt.Sprintf("imported %d items", len(body.Items)))
	return utils.Success(c).
		WithStatus(fiber.StatusCreated).
		WithData(body.Items).
		WithMessage(fmt.Sprintf("%d collectibles imported", len(body.Items))).
		Send()
}

// ExportCollectibles streams the registry as a CSV download.
func ExportCollectibles(c *fiber.Ctx) error {
	items, err := Store.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := export.CSV(items)
	if err != nil {
		return utils.SendError(c, utils.StorageError(err))
	}

	logActivity(c, collectibles.ActionExport, "collectible", "", fmt.Sprintf("exported %d items", len(items)))

	filename := export.Filename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// CollectibleAnalytics computes the dashboard breakdowns over the whole
// registry, independent of any active filter.
func CollectibleAnalytics(c *fiber.Ctx) error {
	items, err := Store.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	data := fiber.Map{
		"summary":      stats.Summarize(items),
		"by_type":      stats.CountByType(items),
		"value_stats":  stats.ValueByType(items),
		"by_country":   stats.TopCountries(items, stats.TopCountryLimit),
		"by_condition": stats.CountByCondition(items),
		"by_decade":    stats.CountByDecade(items),
		"monthly":      stats.MonthlySeries(items, time.Now()),
	}
	return utils.SendSuccess(c, data)
}
