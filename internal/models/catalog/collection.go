package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"gorm.io/gorm"
)

// Collection is a named group of coins owned by a user.
type Collection struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     *int      `gorm:"index" json:"owner_id" validate:"omitempty,gte=1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CollectionRow is a Collection joined to its owner's username.
type CollectionRow struct {
	Collection
	OwnerName *string `json:"owner_name"`
}

// CollectionCoin links a coin into a collection with acquisition details.
type CollectionCoin struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	CollectionID  int        `gorm:"index;not null" json:"collection_id" validate:"required,gte=1"`
	CoinID        int        `gorm:"index;not null" json:"coin_id" validate:"required,gte=1"`
	Quantity      int        `gorm:"default:1" json:"quantity" validate:"omitempty,gte=1"`
	PurchasePrice *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

const collectionSelect = `SELECT c.*, u.username AS owner_name
FROM collections c
LEFT JOIN users u ON c.owner_id = u.id`

// ListCollections lists all collections with owner names, ordered by name.
func ListCollections(ctx context.Context, db *gorm.DB) ([]CollectionRow, error) {
	var rows []CollectionRow
	if err := db.WithContext(ctx).Raw(collectionSelect + " ORDER BY c.name").Scan(&rows).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if rows == nil {
		rows = []CollectionRow{}
	}
	return rows, nil
}

// GetCollectionByID fetches one collection with its owner name.
func GetCollectionByID(ctx context.Context, db *gorm.DB, id int) (*CollectionRow, error) {
	var row CollectionRow
	result := db.WithContext(ctx).Raw(collectionSelect+" WHERE c.id = $1", id).Scan(&row)
	if result.Error != nil {
		return nil, utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFoundError("Collection")
	}
	return &row, nil
}

// ListCollectionsByOwner lists a user's collections ordered by name.
func ListCollectionsByOwner(ctx context.Context, db *gorm.DB, ownerID int) ([]CollectionRow, error) {
	var rows []CollectionRow
	if err := db.WithContext(ctx).Raw(collectionSelect+" WHERE c.owner_id = $1 ORDER BY c.name", ownerID).Scan(&rows).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if rows == nil {
		rows = []CollectionRow{}
	}
	return rows, nil
}

// CreateCollection persists a new collection.
func CreateCollection(ctx context.Context, db *gorm.DB, collection *Collection) error {
	if err := db.WithContext(ctx).Create(collection).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// UpdateCollection replaces the editable fields of a collection.
func UpdateCollection(ctx context.Context, db *gorm.DB, id int, collection *Collection) error {
	var existing Collection
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Collection")
		}
		return utils.StorageError(err)
	}

	collection.ID = id
	collection.CreatedAt = existing.CreatedAt
	if err := db.WithContext(ctx).Save(collection).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// DeleteCollection removes a collection by id.
func DeleteCollection(ctx context.Context, db *gorm.DB, id int) error {
	result := db.WithContext(ctx).Delete(&Collection{}, id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Collection")
	}
	return nil
}

// CoinsInCollection lists the coins linked into a collection, with their
// lookup names and the link metadata.
func CoinsInCollection(ctx context.Context, db *gorm.DB, collectionID int) ([]CoinRow, error) {
	var rows []CoinRow
	sql := `SELECT c.*, co.name AS country_name, d.value AS denomination_value,
       m.name AS material_name, cond.name AS condition_name
FROM collection_coins cc
JOIN coins c ON cc.coin_id = c.id
LEFT JOIN countries co ON c.country_id = co.id
LEFT JOIN denominations d ON c.denomination_id = d.id
LEFT JOIN materials m ON c.material_id = m.id
LEFT JOIN conditions cond ON c.condition_id = cond.id
WHERE cc.collection_id = $1 AND c.deleted_at IS NULL`
	if err := db.WithContext(ctx).Raw(sql, collectionID).Scan(&rows).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	if rows == nil {
		rows = []CoinRow{}
	}
	return rows, nil
}

// AddCoinToCollection links a coin into a collection.
func AddCoinToCollection(ctx context.Context, db *gorm.DB, link *CollectionCoin) error {
	if link.Quantity < 1 {
		link.Quantity = 1
	}
	if err := db.WithContext(ctx).Create(link).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// RemoveCoinFromCollection unlinks a coin from a collection.
func RemoveCoinFromCollection(ctx context.Context, db *gorm.DB, collectionID, coinID int) error {
	result := db.WithContext(ctx).
		Where("collection_id = ? AND coin_id = ?", collectionID, coinID).
		Delete(&CollectionCoin{})
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Coin in collection")
	}
	return nil
}
