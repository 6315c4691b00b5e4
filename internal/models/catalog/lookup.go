package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"gorm.io/gorm"
)

// Country is an issuing country.
type Country struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Code      string    `gorm:"size:3" json:"code" validate:"omitempty,max=3"`
	Continent string    `gorm:"size:50" json:"continent" validate:"omitempty,max=50"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Denomination is a face value with its currency.
type Denomination struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Value     string    `gorm:"size:50;not null" json:"value" validate:"required,max=50"`
	Currency  string    `gorm:"size:50" json:"currency" validate:"omitempty,max=50"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Material is a coin composition.
type Material struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Condition is a wear grade on the numismatic scale.
type Condition struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ListLookup lists any lookup table ordered by the given column.
func ListLookup[T any](ctx context.Context, db *gorm.DB, orderBy string) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order(orderBy).Find(&rows).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return rows, nil
}

// GetLookupByID fetches one lookup row by id.
func GetLookupByID[T any](ctx context.Context, db *gorm.DB, entity string, id int) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError(entity)
		}
		return nil, utils.StorageError(err)
	}
	return &row, nil
}

// CreateLookup persists a new lookup row.
func CreateLookup[T any](ctx context.Context, db *gorm.DB, row *T) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// UpdateLookup replaces the fields of an existing lookup row. Select("*")
// forces zero values through, so updates are full replaces of the editable
// fields.
func UpdateLookup[T any](ctx context.Context, db *gorm.DB, entity string, id int, row *T) error {
	result := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(row)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError(entity)
	}
	return nil
}

// DeleteLookup removes a lookup row by id.
func DeleteLookup[T any](ctx context.Context, db *gorm.DB, entity string, id int) error {
	var row T
	result := db.WithContext(ctx).Delete(&row, id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError(entity)
	}
	return nil
}
