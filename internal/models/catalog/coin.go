// Package catalog holds the relational coin catalog: coins, their lookup
// tables, and user collections.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"gorm.io/gorm"
)

// Coin is a catalog entry referencing the four lookup tables.
type Coin struct {
	ID             int            `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Description    string         `gorm:"type:text" json:"description"`
	Year           *int           `json:"year" validate:"omitempty,plausible_year"`
	CountryID      int            `gorm:"index" json:"country_id" validate:"required,gte=1"`
	DenominationID int            `gorm:"index" json:"denomination_id" validate:"required,gte=1"`
	MaterialID     int            `gorm:"index" json:"material_id" validate:"required,gte=1"`
	ConditionID    *int           `gorm:"index" json:"condition_id" validate:"omitempty,gte=1"`
	FaceValue      string         `gorm:"size:50" json:"face_value" validate:"omitempty,max=50"`
	Weight         *float64       `json:"weight" validate:"omitempty,gte=0"`
	Diameter       *float64       `json:"diameter" validate:"omitempty,gte=0"`
	Thickness      *float64       `json:"thickness" validate:"omitempty,gte=0"`
	Edge           string         `gorm:"size:100" json:"edge" validate:"omitempty,max=100"`
	MintMark       string         `gorm:"size:50" json:"mint_mark" validate:"omitempty,max=50"`
	Series         string         `gorm:"size:255" json:"series" validate:"omitempty,max=255"`
	ObverseDesign  string         `gorm:"type:text" json:"obverse_design"`
	ReverseDesign  string         `gorm:"type:text" json:"reverse_design"`
	Images         []string       `gorm:"serializer:json" json:"images"`
	Rarity         string         `gorm:"size:50" json:"rarity" validate:"omitempty,max=50"`
	EstimatedValue *float64       `json:"estimated_value" validate:"omitempty,gte=0"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CoinRow is a Coin joined to the display names of its lookup references.
type CoinRow struct {
	Coin
	CountryName       *string `json:"country_name"`
	DenominationValue *string `json:"denomination_value"`
	MaterialName      *string `json:"material_name"`
	ConditionName     *string `json:"condition_name"`
}

// ListCoins runs the filtered, paginated listing plus the count variant
// and returns the rows with pagination metadata.
func ListCoins(ctx context.Context, db *gorm.DB, q CoinQuery) ([]CoinRow, *utils.Pagination, error) {
	sql, args, err := q.Build()
	if err != nil {
		return nil, nil, err
	}

	var rows []CoinRow
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, nil, utils.StorageError(err)
	}

	countSQL, countArgs := q.BuildCount()
	var total int64
	if err := db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return nil, nil, utils.StorageError(err)
	}

	if rows == nil {
		rows = []CoinRow{}
	}
	return rows, utils.NewPagination(q.Page, q.Limit, total), nil
}

// GetCoinByID fetches one coin with its joined lookup names.
func GetCoinByID(ctx context.Context, db *gorm.DB, id int) (*CoinRow, error) {
	var row CoinRow
	result := db.WithContext(ctx).Raw(coinSelect+" AND c.id = $1", id).Scan(&row)
	if result.Error != nil {
		return nil, utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFoundError("Coin")
	}
	return &row, nil
}

// CreateCoin persists a new coin.
func CreateCoin(ctx context.Context, db *gorm.DB, coin *Coin) error {
	if err := db.WithContext(ctx).Create(coin).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// UpdateCoin replaces the editable fields of an existing coin.
func UpdateCoin(ctx context.Context, db *gorm.DB, id int, coin *Coin) error {
	var existing Coin
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Coin")
		}
		return utils.StorageError(err)
	}

	coin.ID = id
	coin.CreatedAt = existing.CreatedAt
	if err := db.WithContext(ctx).Save(coin).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// DeleteCoin removes a coin by id.
func DeleteCoin(ctx context.Context, db *gorm.DB, id int) error {
	result := db.WithContext(ctx).Delete(&Coin{}, id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Coin")
	}
	return nil
}
